package commands

// Messages shared by several commands.
const (
	MessageInvalidOrderDisplayedIndex = "The order index provided is invalid"
	MessageInvalidOrderItemIndex      = "The order item index provided is invalid"
	MessageOrdersListedOverview       = "%d orders listed!"
	MessageOrdersReminderOverview     = "%d orders due within %d days!"
	MessageDuplicateOrder             = "This order already exists in CakeCollate"
	MessageDuplicateOrderItem         = "This order item already exists in the order items list"
	MessageMissingOrderDescription    = "An order needs at least one order description, given directly or as order item indexes"
)

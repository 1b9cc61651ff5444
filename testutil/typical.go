package testutil

import "cakecollate/pkg/domain"

// Typical orders, in the order TypicalOrders returns them. Their delivery
// dates are deliberately unsorted.
var (
	Alice = NewOrderBuilder().WithName("Alice Pauline").WithPhone("94351253").
		WithEmail("alice@example.com").WithAddress("123, Jurong West Ave 6, #08-111").
		WithOrderDescriptions("Chocolate Cake").WithTags("friends").
		WithDeliveryDate("20/06/2100").Build()
	Benson = NewOrderBuilder().WithName("Benson Meier").WithPhone("98765432").
		WithEmail("johnd@example.com").WithAddress("311, Clementi Ave 2, #02-25").
		WithOrderDescriptions("Strawberry Cake", "Mango Cake").WithTags("owesMoney", "friends").
		WithDeliveryDate("15/06/2100").WithDeliveryTime("14:30").Build()
	Carl = NewOrderBuilder().WithName("Carl Kurz").WithPhone("95352563").
		WithEmail("heinz@example.com").WithAddress("wall street").
		WithOrderDescriptions("Black Forest Cake").
		WithDeliveryDate("15/06/2100").WithDeliveryTime("09:00").Build()
	Daniel = NewOrderBuilder().WithName("Daniel Meier").WithPhone("87652533").
		WithEmail("cornelia@example.com").WithAddress("10th street").
		WithOrderDescriptions("Red Velvet Cake").WithTags("friends").
		WithDeliveryDate("01/07/2100").Build()
	Elle = NewOrderBuilder().WithName("Elle Meyer").WithPhone("9482224").
		WithEmail("werner@example.com").WithAddress("michegan ave").
		WithOrderDescriptions("Chocolate Cake", "Vanilla Cake").
		WithDeliveryDate("15/06/2100").Build()
	Fiona = NewOrderBuilder().WithName("Fiona Kunz").WithPhone("9482427").
		WithEmail("lydia@example.com").WithAddress("little tokyo").
		WithOrderDescriptions("Durian Cake").WithRemark("less sugar").
		WithDeliveryDate("03/06/2100").Build()
	George = NewOrderBuilder().WithName("George Best").WithPhone("9482442").
		WithEmail("anna@example.com").WithAddress("4th street").
		WithOrderDescriptions("Mango Cake").
		WithDeliveryDate("30/06/2100").Build()
)

// Orders that are not part of the typical set.
var (
	Amy = NewOrderBuilder().WithTags("friend").Build()
	Bob = NewOrderBuilder().WithName("Bob Choo").WithPhone("22222222").
		WithEmail("bob@example.com").WithAddress("Block 123, Bobby Street 3").
		WithOrderDescriptions("Chocolate Cake").WithTags("husband", "friend").
		WithDeliveryDate("25/12/2100").Build()
)

// TypicalOrders returns the typical orders in store order.
func TypicalOrders() []domain.Order {
	return []domain.Order{Alice, Benson, Carl, Daniel, Elle, Fiona, George}
}

// TypicalOrderItems returns a catalog covering some typical descriptions.
func TypicalOrderItems() []domain.OrderItem {
	return []domain.OrderItem{
		OrderItemOf("Chocolate Cake", "35.50"),
		OrderItemOf("Strawberry Cake", "40"),
		OrderItemOf("Mango Cake", ""),
		OrderItemOf("Black Forest Cake", "45.90"),
	}
}

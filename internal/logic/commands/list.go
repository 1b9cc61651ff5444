package commands

import (
	"context"

	"cakecollate/internal/model"
	"cakecollate/internal/model/predicate"
)

// Commands without arguments.
const (
	ListWord  = "list"
	ClearWord = "clear"
	SortWord  = "sort"
	HelpWord  = "help"
	ExitWord  = "exit"

	MessageListSuccess  = "Listed all orders"
	MessageClearSuccess = "CakeCollate has been cleared!"
	MessageSortSuccess  = "Sorted all orders by delivery date and time"
	MessageShowingHelp  = "Opened help window."
	MessageExit         = "Exiting CakeCollate as requested ..."
)

// List shows every order.
type List struct{}

func (List) Word() string { return ListWord }

func (List) Execute(_ context.Context, m model.Model) (Result, error) {
	m.UpdateFilteredOrderList(predicate.ShowAllOrders{})
	return NewResult(MessageListSuccess), nil
}

// Clear removes every order. The order item catalog is kept.
type Clear struct{}

func (Clear) Word() string { return ClearWord }

func (Clear) Execute(_ context.Context, m model.Model) (Result, error) {
	if err := m.SetCakeCollate(model.NewCakeCollate()); err != nil {
		return Result{}, failf(err, MessageDuplicateOrder)
	}
	return NewResult(MessageClearSuccess), nil
}

// Sort orders the stored orders by delivery date and time.
type Sort struct{}

func (Sort) Word() string { return SortWord }

func (Sort) Execute(_ context.Context, m model.Model) (Result, error) {
	if err := m.SortFilteredOrderList(); err != nil {
		return Result{}, failf(err, MessageDuplicateOrder)
	}
	return NewResult(MessageSortSuccess), nil
}

// Help asks the front end to show usage information.
type Help struct{}

func (Help) Word() string { return HelpWord }

func (Help) Execute(context.Context, model.Model) (Result, error) {
	return Result{Feedback: MessageShowingHelp, ShowHelp: true}, nil
}

// Exit asks the front end to shut down.
type Exit struct{}

func (Exit) Word() string { return ExitWord }

func (Exit) Execute(context.Context, model.Model) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}

// Usages returns the usage line of every command, in help order.
func Usages() []string {
	return []string{
		AddUsage, EditUsage, DeleteUsage, FindUsage, RemindUsage, RemarkUsage,
		DeliveryStatusUsage, AddOrderItemUsage, DeleteOrderItemUsage,
		ListWord + ": Lists all orders.",
		SortWord + ": Sorts orders by delivery date and time.",
		ClearWord + ": Deletes every order.",
		HelpWord + ": Shows this help.",
		ExitWord + ": Exits the program.",
	}
}

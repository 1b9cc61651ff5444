package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cakecollate/internal/logic/commands"
	"cakecollate/internal/model/predicate"
	"cakecollate/pkg/domain"
	"cakecollate/pkg/domain/index"
)

// RestoreWord restores the newest archived snapshot. It is handled by the
// driver rather than by a model command.
const RestoreWord = "restore"

const (
	messageUnknownCommand = "Unknown command"
	messageInvalidFormat  = "Invalid command format!"
)

// Argument prefixes.
const (
	prefixName        = "n"
	prefixPhone       = "p"
	prefixEmail       = "e"
	prefixAddress     = "a"
	prefixDescription = "o"
	prefixItemIndexes = "oi"
	prefixTag         = "t"
	prefixDate        = "d"
	prefixTime        = "dt"
	prefixRemark      = "r"
	prefixCost        = "c"
)

var findFields = map[string]predicate.Field{
	prefixName:        predicate.FieldName,
	prefixPhone:       predicate.FieldPhone,
	prefixEmail:       predicate.FieldEmail,
	prefixAddress:     predicate.FieldAddress,
	prefixDescription: predicate.FieldDescription,
	prefixTag:         predicate.FieldTag,
	prefixRemark:      predicate.FieldRemark,
	prefixDate:        predicate.FieldDeliveryDate,
}

// usageError reports arguments that do not form a command.
type usageError struct {
	usage string
	err   error
}

func (e *usageError) Error() string {
	msg := messageInvalidFormat
	if e.err != nil {
		msg += " " + e.err.Error()
	}
	if e.usage != "" {
		msg += "\n" + e.usage
	}
	return msg
}

func (e *usageError) Unwrap() error { return e.err }

// arguments splits "prefix/value" words from the leading preamble words.
type arguments struct {
	preamble []string
	values   map[string][]string
}

func tokenize(args []string, prefixes ...string) arguments {
	known := make(map[string]bool, len(prefixes))
	for _, p := range prefixes {
		known[p] = true
	}
	out := arguments{values: make(map[string][]string)}
	for _, arg := range args {
		if p, v, ok := strings.Cut(arg, "/"); ok && known[p] {
			out.values[p] = append(out.values[p], strings.TrimSpace(v))
			continue
		}
		out.preamble = append(out.preamble, arg)
	}
	return out
}

func (a arguments) has(prefix string) bool { return len(a.values[prefix]) > 0 }

// last returns the final value given for prefix, as later values win.
func (a arguments) last(prefix string) string {
	vs := a.values[prefix]
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}

func (a arguments) all(prefix string) []string { return a.values[prefix] }

// parseCommand builds the command named by args[0] from the remaining words.
// Remind windows are measured against clock.
func parseCommand(args []string, clock domain.Clock) (commands.Command, error) {
	if len(args) == 0 {
		return nil, &usageError{usage: commands.HelpWord + ": Shows usage for every command."}
	}
	word, rest := args[0], args[1:]
	switch word {
	case commands.AddWord:
		return parseAdd(rest)
	case commands.EditWord:
		return parseEdit(rest)
	case commands.DeleteWord:
		is, err := parseIndexes(rest)
		if err != nil {
			return nil, &usageError{usage: commands.DeleteUsage, err: err}
		}
		return commands.Delete{Indexes: is}, nil
	case commands.FindWord:
		return parseFind(rest)
	case commands.RemindWord:
		return parseRemind(rest, clock)
	case commands.RemarkWord:
		return parseRemark(rest)
	case string(domain.StatusDelivered), string(domain.StatusUndelivered), string(domain.StatusCancelled):
		is, err := parseIndexes(rest)
		if err != nil {
			return nil, &usageError{usage: commands.DeliveryStatusUsage, err: err}
		}
		return commands.DeliveryStatus{Indexes: is, Status: domain.DeliveryStatus(word)}, nil
	case commands.AddOrderItemWord:
		return parseAddOrderItem(rest)
	case commands.DeleteOrderItemWord:
		is, err := parseIndexes(rest)
		if err != nil {
			return nil, &usageError{usage: commands.DeleteOrderItemUsage, err: err}
		}
		return commands.DeleteOrderItem{Indexes: is}, nil
	case commands.ListWord:
		return commands.List{}, nil
	case commands.ClearWord:
		return commands.Clear{}, nil
	case commands.SortWord:
		return commands.Sort{}, nil
	case commands.HelpWord:
		return commands.Help{}, nil
	case commands.ExitWord:
		return commands.Exit{}, nil
	default:
		return nil, errors.New(messageUnknownCommand)
	}
}

func parseIndexes(words []string) (index.List, error) {
	if len(words) == 0 {
		return nil, errors.New("at least one index is required")
	}
	ns := make([]int, 0, len(words))
	for _, w := range strings.Fields(strings.Join(words, " ")) {
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("index %q is not a number", w)
		}
		ns = append(ns, n)
	}
	return index.Of(ns...)
}

func parseIndex(words []string) (index.Index, error) {
	is, err := parseIndexes(words)
	if err != nil {
		return index.Index{}, err
	}
	if len(is) != 1 {
		return index.Index{}, errors.New("exactly one index is required")
	}
	return is[0], nil
}

func parseAdd(args []string) (commands.Command, error) {
	a := tokenize(args, prefixName, prefixPhone, prefixEmail, prefixAddress, prefixDescription,
		prefixItemIndexes, prefixTag, prefixDate, prefixTime)
	for _, p := range []string{prefixName, prefixPhone, prefixEmail, prefixAddress, prefixDate} {
		if !a.has(p) {
			return nil, &usageError{usage: commands.AddUsage, err: fmt.Errorf("missing %s/", p)}
		}
	}
	if len(a.preamble) > 0 {
		return nil, &usageError{usage: commands.AddUsage, err: fmt.Errorf("unexpected %q", strings.Join(a.preamble, " "))}
	}

	var (
		d   commands.AddOrderDescriptor
		err error
	)
	if d.Name, err = domain.NewName(a.last(prefixName)); err != nil {
		return nil, err
	}
	if d.Phone, err = domain.NewPhone(a.last(prefixPhone)); err != nil {
		return nil, err
	}
	if d.Email, err = domain.NewEmail(a.last(prefixEmail)); err != nil {
		return nil, err
	}
	if d.Address, err = domain.NewAddress(a.last(prefixAddress)); err != nil {
		return nil, err
	}
	if d.Descriptions, err = parseDescriptions(a.all(prefixDescription)); err != nil {
		return nil, err
	}
	if d.Tags, err = parseTags(a.all(prefixTag)); err != nil {
		return nil, err
	}
	if d.DeliveryDate, err = domain.NewDeliveryDate(a.last(prefixDate)); err != nil {
		return nil, err
	}
	if a.has(prefixTime) {
		if d.DeliveryTime, err = domain.NewDeliveryTime(a.last(prefixTime)); err != nil {
			return nil, err
		}
	}
	var items index.List
	if a.has(prefixItemIndexes) {
		if items, err = parseIndexes(a.all(prefixItemIndexes)); err != nil {
			return nil, &usageError{usage: commands.AddUsage, err: err}
		}
	}
	return commands.Add{Items: items, Descriptor: d}, nil
}

func parseEdit(args []string) (commands.Command, error) {
	a := tokenize(args, prefixName, prefixPhone, prefixEmail, prefixAddress, prefixDescription,
		prefixTag, prefixDate, prefixTime)
	i, err := parseIndex(a.preamble)
	if err != nil {
		return nil, &usageError{usage: commands.EditUsage, err: err}
	}
	var d commands.EditOrderDescriptor
	if a.has(prefixName) {
		if d.Name, err = domain.NewName(a.last(prefixName)); err != nil {
			return nil, err
		}
	}
	if a.has(prefixPhone) {
		if d.Phone, err = domain.NewPhone(a.last(prefixPhone)); err != nil {
			return nil, err
		}
	}
	if a.has(prefixEmail) {
		if d.Email, err = domain.NewEmail(a.last(prefixEmail)); err != nil {
			return nil, err
		}
	}
	if a.has(prefixAddress) {
		if d.Address, err = domain.NewAddress(a.last(prefixAddress)); err != nil {
			return nil, err
		}
	}
	if d.Descriptions, err = parseDescriptions(a.all(prefixDescription)); err != nil {
		return nil, err
	}
	if a.has(prefixTag) {
		// A lone empty t/ clears the tag set.
		d.ReplaceTags = true
		tags := a.all(prefixTag)
		if len(tags) == 1 && tags[0] == "" {
			tags = nil
		}
		if d.Tags, err = parseTags(tags); err != nil {
			return nil, err
		}
	}
	if a.has(prefixDate) {
		if d.DeliveryDate, err = domain.NewDeliveryDate(a.last(prefixDate)); err != nil {
			return nil, err
		}
	}
	if a.has(prefixTime) {
		if d.DeliveryTime, err = domain.NewDeliveryTime(a.last(prefixTime)); err != nil {
			return nil, err
		}
	}
	cmd, err := commands.NewEdit(i, d)
	if err != nil {
		return nil, &usageError{usage: commands.EditUsage, err: err}
	}
	return cmd, nil
}

func parseFind(args []string) (commands.Command, error) {
	prefixes := make([]string, 0, len(findFields))
	for p := range findFields {
		prefixes = append(prefixes, p)
	}
	a := tokenize(args, prefixes...)
	keywords := strings.Fields(strings.Join(a.preamble, " "))
	byField := make(map[predicate.Field][]string)
	for p, values := range a.values {
		kws := strings.Fields(strings.Join(values, " "))
		if len(kws) == 0 {
			return nil, &usageError{usage: commands.FindUsage, err: fmt.Errorf("empty %s/ keywords", p)}
		}
		byField[findFields[p]] = kws
	}
	if len(keywords) == 0 && len(byField) == 0 {
		return nil, &usageError{usage: commands.FindUsage, err: errors.New("no keywords")}
	}
	return commands.NewFind(keywords, byField), nil
}

func parseRemind(args []string, clock domain.Clock) (commands.Command, error) {
	if len(args) != 1 {
		return nil, &usageError{usage: commands.RemindUsage}
	}
	days, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return nil, &usageError{usage: commands.RemindUsage, err: fmt.Errorf("days %q is not a number", args[0])}
	}
	cmd, err := commands.NewRemind(days, clock)
	if err != nil {
		return nil, &usageError{usage: commands.RemindUsage, err: err}
	}
	return cmd, nil
}

func parseRemark(args []string) (commands.Command, error) {
	a := tokenize(args, prefixRemark)
	i, err := parseIndex(a.preamble)
	if err != nil {
		return nil, &usageError{usage: commands.RemarkUsage, err: err}
	}
	if !a.has(prefixRemark) {
		return nil, &usageError{usage: commands.RemarkUsage, err: errors.New("missing r/")}
	}
	return commands.Remark{Index: i, Remark: domain.NewRemark(a.last(prefixRemark))}, nil
}

func parseAddOrderItem(args []string) (commands.Command, error) {
	a := tokenize(args, prefixDescription, prefixCost)
	if !a.has(prefixDescription) || len(a.preamble) > 0 {
		return nil, &usageError{usage: commands.AddOrderItemUsage}
	}
	t, err := domain.NewItemType(a.last(prefixDescription))
	if err != nil {
		return nil, err
	}
	var cost domain.Cost
	if a.has(prefixCost) {
		if cost, err = domain.NewCost(a.last(prefixCost)); err != nil {
			return nil, err
		}
	}
	item, err := domain.NewOrderItem(t, cost)
	if err != nil {
		return nil, err
	}
	return commands.AddOrderItem{Item: item}, nil
}

func parseDescriptions(raw []string) ([]domain.OrderDescription, error) {
	out := make([]domain.OrderDescription, 0, len(raw))
	for _, r := range raw {
		d, err := domain.NewOrderDescription(r)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func parseTags(raw []string) ([]domain.Tag, error) {
	out := make([]domain.Tag, 0, len(raw))
	for _, r := range raw {
		t, err := domain.NewTag(r)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

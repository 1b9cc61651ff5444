package domain

import (
	"errors"
	"testing"
	"time"
)

func TestValueConstructors(t *testing.T) {
	type check struct {
		raw   string
		valid bool
	}
	validators := map[string]struct {
		fn    func(string) error
		cases []check
	}{
		"name": {func(s string) error { _, err := NewName(s); return err }, []check{
			{"Alice Pauline", true}, {"R2D2", true}, {"", false}, {" Alice", false}, {"Alice*", false},
		}},
		"phone": {func(s string) error { _, err := NewPhone(s); return err }, []check{
			{"911", true}, {"93121534", true}, {"91", false}, {"9312 1534", false}, {"phone", false},
		}},
		"email": {func(s string) error { _, err := NewEmail(s); return err }, []check{
			{"alice@example.com", true}, {"a+b.c@mail-server.sg", true}, {"a@bc", true},
			{"", false}, {"@example.com", false}, {"alice@", false}, {"alice@b", false}, {"-alice@example.com", false},
		}},
		"address": {func(s string) error { _, err := NewAddress(s); return err }, []check{
			{"Blk 456, Den Road, #01-355", true}, {"-", true}, {"", false}, {" leading", false},
		}},
		"order description": {func(s string) error { _, err := NewOrderDescription(s); return err }, []check{
			{"Chocolate Cake", true}, {"a", true}, {"cake ", true}, {"Chocolate  Cake", true},
			{"", false}, {" cake", false}, {"   ", false}, {"Cake2", false}, {"Cake-Pop", false},
		}},
		"item type": {func(s string) error { _, err := NewItemType(s); return err }, []check{
			{"Black Forest Cake", true}, {"", false}, {"Cake!", false},
		}},
		"tag": {func(s string) error { _, err := NewTag(s); return err }, []check{
			{"friends", true}, {"vip2", true}, {"", false}, {"best friend", false},
		}},
		"cost": {func(s string) error { _, err := NewCost(s); return err }, []check{
			{"0", true}, {"12", true}, {"12.5", true}, {"12.55", true},
			{"", false}, {"-1", false}, {"1.234", false}, {"abc", false}, {".5", false},
		}},
		"delivery time": {func(s string) error { _, err := NewDeliveryTime(s); return err }, []check{
			{"00:00", true}, {"23:59", true}, {"24:00", false}, {"9:30", false}, {"", false},
		}},
	}
	for name, v := range validators {
		for _, c := range v.cases {
			t.Run(name+"/"+c.raw, func(t *testing.T) {
				err := v.fn(c.raw)
				if (err == nil) != c.valid {
					t.Fatalf("%s %q: valid=%v, err=%v", name, c.raw, c.valid, err)
				}
				var iv *InvalidValueError
				if err != nil && !errors.As(err, &iv) {
					t.Fatalf("expected InvalidValueError, got %T", err)
				}
			})
		}
	}
}

func TestDeliveryDateLayouts(t *testing.T) {
	want := time.Date(2100, time.June, 20, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{
		"20/06/2100", "20-06-2100", "20.06.2100", "2100/06/20", "2100-06-20",
		"20 Jun 2100", "20 June 2100", "Jun 20 2100", "June 20 2100", "20/6/2100",
	} {
		d, err := NewDeliveryDate(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if !d.Time().Equal(want) {
			t.Fatalf("parse %q: got %v", raw, d.Time())
		}
		if d.String() != "20/06/2100" {
			t.Fatalf("unexpected display %q", d.String())
		}
	}
	for _, raw := range []string{"", "31/02/2100", "2100-13-01", " 20/06/2100", "20/06/2100 ", "tomorrow"} {
		if IsValidDeliveryDate(raw) {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestDeliveryDateArithmetic(t *testing.T) {
	d := DateOf(time.Date(2100, time.December, 30, 23, 59, 0, 0, time.UTC))
	next := d.AddDays(3)
	if next.String() != "02/01/2101" {
		t.Fatalf("unexpected date %s", next)
	}
	if !d.Before(next) || !next.After(d) || d.Compare(next) != -1 || !d.Equal(d.AddDays(0)) {
		t.Fatalf("unexpected ordering between %s and %s", d, next)
	}
}

func TestDeliveryTimeMinutes(t *testing.T) {
	for raw, want := range map[string]int{"00:00": 0, "00:59": 59, "09:08": 9*60 + 8, "13:05": 13*60 + 5, "23:59": 23*60 + 59} {
		tm, err := NewDeliveryTime(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if tm.Minutes() != want || tm.String() != raw {
			t.Fatalf("%q: unexpected time %s (%d), want %d", raw, tm, tm.Minutes(), want)
		}
	}
	var unset DeliveryTime
	if !unset.IsZero() || unset.Minutes() != -1 || unset.String() != "" {
		t.Fatalf("unexpected unset time")
	}
}

func TestParseDeliveryStatus(t *testing.T) {
	for raw, want := range map[string]DeliveryStatus{
		"delivered": StatusDelivered, "Undelivered": StatusUndelivered, "CANCELLED": StatusCancelled,
	} {
		got, err := ParseDeliveryStatus(raw)
		if err != nil || got != want {
			t.Fatalf("ParseDeliveryStatus(%q) = %v, %v", raw, got, err)
		}
	}
	if _, err := ParseDeliveryStatus("shipped"); err == nil {
		t.Fatalf("expected unknown status to fail")
	}
}

func TestCostCents(t *testing.T) {
	c, err := NewCost("12.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Cents() != 1250 || c.String() != "12.50" || c.IsZero() {
		t.Fatalf("unexpected cost %s (%d)", c, c.Cents())
	}
	free, _ := NewCost("0")
	if free.IsZero() || free.String() != "0.00" {
		t.Fatalf("explicit zero cost should be set")
	}
	var unpriced Cost
	if !unpriced.IsZero() || unpriced.String() != "" {
		t.Fatalf("unexpected unpriced cost")
	}
}

func TestItemTypeFoldsCase(t *testing.T) {
	a, _ := NewItemType("Chocolate Cake")
	b, _ := NewItemType("CHOCOLATE cake")
	if !a.Equal(b) || a.Key() != b.Key() {
		t.Fatalf("expected case-insensitive match")
	}
	if a.String() != "Chocolate Cake" {
		t.Fatalf("spelling should be kept, got %q", a.String())
	}
	d, _ := NewOrderDescription("Chocolate Cake")
	if d.ItemType() != a || a.Description() != d {
		t.Fatalf("description and type should convert both ways")
	}
}

func TestRemark(t *testing.T) {
	if !NewRemark("").IsZero() || NewRemark("Leave at door").String() != "Leave at door" {
		t.Fatalf("unexpected remark behavior")
	}
}

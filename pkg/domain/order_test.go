package domain_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"cakecollate/pkg/domain"
	"cakecollate/testutil"
)

func TestNewOrderRequiresFields(t *testing.T) {
	full := testutil.NewOrderBuilder().Fields()
	cases := map[string]func(*domain.OrderFields){
		"name":          func(f *domain.OrderFields) { f.Name = domain.Name{} },
		"phone":         func(f *domain.OrderFields) { f.Phone = domain.Phone{} },
		"email":         func(f *domain.OrderFields) { f.Email = domain.Email{} },
		"address":       func(f *domain.OrderFields) { f.Address = domain.Address{} },
		"delivery date": func(f *domain.OrderFields) { f.DeliveryDate = domain.DeliveryDate{} },
		"descriptions":  func(f *domain.OrderFields) { f.Descriptions = nil },
		"status":        func(f *domain.OrderFields) { f.Status = "lost" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := full
			mutate(&f)
			_, err := domain.NewOrder(f)
			var iv *domain.InvalidValueError
			if !errors.As(err, &iv) {
				t.Fatalf("expected InvalidValueError, got %v", err)
			}
		})
	}
}

func TestNewOrderNormalizes(t *testing.T) {
	o := testutil.NewOrderBuilder().
		WithOrderDescriptions("Mango Cake", "Chocolate Cake", "Mango Cake").
		WithTags("vip", "friends", "vip").
		Build()
	if got := o.Descriptions(); len(got) != 2 || got[0].String() != "Mango Cake" {
		t.Fatalf("unexpected descriptions %v", got)
	}
	tags := o.Tags()
	if len(tags) != 2 || tags[0].String() != "friends" || tags[1].String() != "vip" {
		t.Fatalf("unexpected tags %v", tags)
	}
	if o.Status() != domain.StatusUndelivered {
		t.Fatalf("expected default status, got %s", o.Status())
	}

	tags[0], _ = domain.NewTag("mutated")
	if o.Tags()[0].String() != "friends" {
		t.Fatalf("Tags must return a copy")
	}
}

func TestSameOrder(t *testing.T) {
	alice := testutil.Alice
	if !alice.SameOrder(alice) {
		t.Fatalf("SameOrder must be reflexive")
	}
	edited := testutil.OrderBuilderFrom(alice).WithPhone("911").WithEmail("x@example.com").
		WithAddress("elsewhere").WithTags("husband").WithOrderDescriptions("Mango Cake").Build()
	if !alice.SameOrder(edited) || !edited.SameOrder(alice) {
		t.Fatalf("identity should ignore non-identity fields")
	}
	if alice.Equal(edited) {
		t.Fatalf("edited order should not be equal")
	}
	otherDay := testutil.OrderBuilderFrom(alice).WithDeliveryDate("21/06/2100").Build()
	if alice.SameOrder(otherDay) {
		t.Fatalf("different delivery date means a different order")
	}
	renamed := testutil.OrderBuilderFrom(alice).WithName("Alice Pauline Tan").Build()
	if alice.SameOrder(renamed) {
		t.Fatalf("different name means a different order")
	}
	lower := testutil.OrderBuilderFrom(alice).WithName("alice pauline").Build()
	if alice.SameOrder(lower) {
		t.Fatalf("names compare exactly")
	}
	for _, o := range testutil.TypicalOrders() {
		clone := testutil.OrderBuilderFrom(o).Build()
		if !o.Equal(clone) || !o.SameOrder(clone) {
			t.Fatalf("equal orders must be the same order: %s", o)
		}
	}
}

func TestWithRemarkAndStatusKeepIdentity(t *testing.T) {
	o := testutil.Alice.WithRemark(domain.NewRemark("no nuts")).WithStatus(domain.StatusDelivered)
	if !o.SameOrder(testutil.Alice) || o.Equal(testutil.Alice) {
		t.Fatalf("remark and status should not change identity")
	}
	if o.Remark().String() != "no nuts" || o.Status() != domain.StatusDelivered {
		t.Fatalf("unexpected order %s", o)
	}
	if testutil.Alice.Remark().String() != "" {
		t.Fatalf("original order must be unchanged")
	}
}

func TestOrderString(t *testing.T) {
	got := testutil.Benson.String()
	for _, want := range []string{
		"Benson Meier; Phone: 98765432",
		"Order Descriptions: [Strawberry Cake][Mango Cake]",
		"Delivery Date: 15/06/2100 14:30",
		"Delivery Status: undelivered",
		"Tags: [friends][owesMoney]",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("%q missing %q", got, want)
		}
	}
	if strings.Contains(testutil.Carl.String(), "Tags:") || strings.Contains(testutil.Carl.String(), "Remark:") {
		t.Fatalf("empty tags and remark should be omitted: %s", testutil.Carl)
	}
}

func TestOrderDecodeRevalidates(t *testing.T) {
	raw, err := json.Marshal(testutil.Fiona)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back domain.Order
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(testutil.Fiona) {
		t.Fatalf("decoded %s, want %s", back, testutil.Fiona)
	}

	tampered := strings.Replace(string(raw), `"9482427"`, `"12"`, 1)
	if err := json.Unmarshal([]byte(tampered), &back); err == nil {
		t.Fatalf("expected invalid phone to be rejected")
	}
	missing := strings.Replace(string(raw), `"order_descriptions":["Durian Cake"]`, `"order_descriptions":[]`, 1)
	if err := json.Unmarshal([]byte(missing), &back); err == nil {
		t.Fatalf("expected order without descriptions to be rejected")
	}
}

func TestOrderItem(t *testing.T) {
	priced := testutil.OrderItemOf("Chocolate Cake", "35.5")
	upper := testutil.OrderItemOf("CHOCOLATE CAKE", "")
	if !priced.SameOrderItem(upper) || priced.Equal(upper) {
		t.Fatalf("same type with different cost should be the same item but not equal")
	}
	if priced.Key() != upper.Key() {
		t.Fatalf("keys should fold case")
	}
	if priced.String() != "Chocolate Cake ($35.50)" || upper.String() != "CHOCOLATE CAKE" {
		t.Fatalf("unexpected strings %q %q", priced, upper)
	}
	d, _ := domain.NewOrderDescription("Chocolate Cake")
	if got := domain.OrderItemFor(d); !got.SameOrderItem(priced) || !got.Cost().IsZero() {
		t.Fatalf("unexpected item for description: %s", got)
	}
	if _, err := domain.NewOrderItem(domain.ItemType{}, domain.Cost{}); err == nil {
		t.Fatalf("expected empty type to be rejected")
	}

	raw, err := json.Marshal(priced)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"type":"Chocolate Cake","cost":"35.50"}` {
		t.Fatalf("unexpected encoding %s", raw)
	}
	var back domain.OrderItem
	if err := json.Unmarshal([]byte(`{"type":"Mango Cake","cost":""}`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Cost().IsZero() || back.Type().String() != "Mango Cake" {
		t.Fatalf("unexpected decoded item %s", back)
	}
}

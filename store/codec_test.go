package store

import (
	"reflect"
	"testing"
)

func TestListRoundTrip(t *testing.T) {
	cases := [][]string{
		{"Math", "English"},
		{"North"},
		{},
	}
	for _, in := range cases {
		got := SplitList(JoinList(in))
		if !reflect.DeepEqual(got, in) {
			t.Errorf("round trip %v -> %v", in, got)
		}
	}
}

// Values are not escaped, so a comma inside a value splits it.
func TestListDelimiterInValue(t *testing.T) {
	got := SplitList(JoinList([]string{"Maths, Further"}))
	if len(got) != 2 {
		t.Fatalf("got %v, want the value split in two", got)
	}
}

func TestFormatItems(t *testing.T) {
	items := []InvoiceItem{
		{Description: "Tutoring", Price: "50.00"},
		{Description: "Book", Price: "20.00"},
	}
	if got, want := FormatItems(items), "Tutoring: 50.00,Book: 20.00"; got != want {
		t.Fatalf("FormatItems = %q, want %q", got, want)
	}
	if got := ParseItems(FormatItems(items)); !reflect.DeepEqual(got, items) {
		t.Fatalf("ParseItems = %v, want %v", got, items)
	}
}

func TestParseItemsEdgeCases(t *testing.T) {
	if got := ParseItems(""); len(got) != 0 {
		t.Errorf("ParseItems(\"\") = %v", got)
	}
	got := ParseItems("Deposit")
	want := []InvoiceItem{{Description: "Deposit"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseItems(Deposit) = %v, want %v", got, want)
	}
}

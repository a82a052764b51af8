package codec

import "testing"

type update struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

func TestJSONRoundTrip(t *testing.T) {
	in := update{Kind: "thing1", Count: 42}

	data, err := JSON{}.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out update
	if err := (JSON{}).Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out != in {
		t.Errorf("Expected round-trip %+v, got %+v", in, out)
	}
}

func TestJSONMarshalError(t *testing.T) {
	if _, err := (JSON{}).Marshal(make(chan int)); err == nil {
		t.Error("Expected unencodable value to fail")
	}
}

func TestJSONName(t *testing.T) {
	if got := (JSON{}).Name(); got != "json" {
		t.Errorf("Expected name json, got %s", got)
	}
}

package broker

import "testing"

// sessionTopic carries update payloads and satisfies Topic for that type
// only; pairing it with any other payload type does not compile.
var _ Topic[update] = sessionTopic{}

func TestTopicAnchorsPayloadType(t *testing.T) {
	if got := (sessionTopic{id: "abc"}).PayloadType(); got != (update{}) {
		t.Errorf("Expected zero-value payload anchor, got %+v", got)
	}
}

package homework

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func decodeEnvelope(t *testing.T, body string) *Envelope {
	t.Helper()
	var e Envelope
	if err := json.Unmarshal([]byte(body), &e); err != nil {
		t.Fatalf("could not decode test body: %v", err)
	}
	return &e
}

func TestValidateReturnsHomeworksInServerOrder(t *testing.T) {
	e := decodeEnvelope(t, `{
		"homeworks": [
			{"homework_name": "hw2", "status": "reviewing"},
			{"homework_name": "hw1", "status": "approved"}
		],
		"current_date": 1700000100
	}`)

	homeworks, err := e.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Homework{
		{Name: "hw2", Status: StatusReviewing},
		{Name: "hw1", Status: StatusApproved},
	}
	if !reflect.DeepEqual(homeworks, want) {
		t.Errorf("got %+v, want %+v", homeworks, want)
	}
}

func TestValidateEmptyAndNullFeeds(t *testing.T) {
	for _, body := range []string{
		`{"homeworks": [], "current_date": 1700000100}`,
		`{"homeworks": null, "current_date": 1700000100}`,
	} {
		e := decodeEnvelope(t, body)
		homeworks, err := e.Validate()
		if err != nil {
			t.Errorf("body %s: unexpected error: %v", body, err)
		}
		if len(homeworks) != 0 {
			t.Errorf("body %s: expected empty feed, got %+v", body, homeworks)
		}
	}
}

func TestValidateEmbeddedError(t *testing.T) {
	e := decodeEnvelope(t, `{"error": {"error": "bad token"}}`)

	_, err := e.Validate()
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.Message != "bad token" {
		t.Errorf("got message %q, want %q", remote.Message, "bad token")
	}
}

func TestValidateNoticeWithoutFeed(t *testing.T) {
	e := decodeEnvelope(t, `{"code": "not_found", "message": "пока ничего нового"}`)

	_, err := e.Validate()
	var notice *RemoteNotice
	if !errors.As(err, &notice) {
		t.Fatalf("expected RemoteNotice, got %v", err)
	}
	if notice.Code != "not_found" || notice.Message != "пока ничего нового" {
		t.Errorf("unexpected notice contents: %+v", notice)
	}
}

func TestValidateSchemaErrors(t *testing.T) {
	for _, body := range []string{
		`{"current_date": 1700000100}`,
		`{"homeworks": "oops", "current_date": 1700000100}`,
		`{"homeworks": {"homework_name": "hw1"}, "current_date": 1700000100}`,
	} {
		e := decodeEnvelope(t, body)
		_, err := e.Validate()
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Errorf("body %s: expected SchemaError, got %v", body, err)
		}
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	e := decodeEnvelope(t, `{
		"homeworks": [{"homework_name": "hw1", "status": "approved"}],
		"current_date": 1700000100
	}`)

	first, err1 := e.Validate()
	second, err2 := e.Validate()
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("validation is not idempotent: %+v vs %+v", first, second)
	}
}

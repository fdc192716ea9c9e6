package eventapitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func TestServerCreateAssignsId(t *testing.T) {
	srv := NewServer()
	defer srv.Close()

	payload, _ := json.Marshal(Record{
		Title: "Standup",
		Start: "2024-06-10T09:00:00Z",
		End:   "2024-06-10T10:00:00Z",
	})

	resp, err := http.Post(srv.URL+"/event/create", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var created Record
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Error("created record has no id")
	}

	records := srv.Records()
	if len(records) != 1 || records[0].ID != created.ID {
		t.Errorf("stored records = %+v", records)
	}
}

func TestServerRejectsUntitledCreate(t *testing.T) {
	srv := NewServer()
	defer srv.Close()

	payload, _ := json.Marshal(Record{Start: "2024-06-10T09:00:00Z", End: "2024-06-10T10:00:00Z"})
	resp, err := http.Post(srv.URL+"/event/create", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestServerUnknownIdsAre404(t *testing.T) {
	srv := NewServer()
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/event/delete/nope", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("delete status = %d, want 404", resp.StatusCode)
	}
}

func TestServerFailNextIsOneShot(t *testing.T) {
	srv := NewServer()
	defer srv.Close()
	srv.FailNext(http.StatusServiceUnavailable)

	resp, err := http.Get(srv.URL + "/event")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("first status = %d, want 503", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/event")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("second status = %d, want 200 after the injected failure", resp.StatusCode)
	}
}

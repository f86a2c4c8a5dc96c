package query

import "testing"

func TestStreamingExecutor_ExecuteStream(t *testing.T) {
	s := corpusStore()
	exec := NewStreamingExecutor(s, nil)
	sq := mustParse(t, "SELECT ?id WHERE { ?id name ?name }", s)

	stream := exec.ExecuteStream(sq)
	rows, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
}

func TestStreamingExecutor_ExecuteStringStream(t *testing.T) {
	s := corpusStore()
	exec := NewStreamingExecutor(s, nil)

	stream, err := exec.ExecuteStringStream("SELECT ?id WHERE { ?id name ?name }")
	if err != nil {
		t.Fatalf("ExecuteStringStream() error: %v", err)
	}
	rows, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
}

func TestStreamingExecutor_ExecuteStringStream_ParseError(t *testing.T) {
	s := corpusStore()
	exec := NewStreamingExecutor(s, nil)
	if _, err := exec.ExecuteStringStream("SELECT ?id"); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestResultStream_CollectPage(t *testing.T) {
	s := corpusStore()
	exec := NewStreamingExecutor(s, &StreamConfig{BufferSize: 1})
	sq := mustParse(t, "SELECT ?id WHERE { ?id name ?name }", s)

	stream := exec.ExecuteStream(sq)
	page, err := stream.CollectPage(1)
	if err != nil {
		t.Fatalf("CollectPage() error: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("got %d rows, want 1", len(page))
	}
}

func TestStreamingExecutor_ExecutePaginated(t *testing.T) {
	s := corpusStore()
	exec := NewStreamingExecutor(s, nil)
	sq := mustParse(t, "SELECT ?id WHERE { ?id name ?name }", s)

	page, err := exec.ExecutePaginated(sq, 1, 1)
	if err != nil {
		t.Fatalf("ExecutePaginated() error: %v", err)
	}
	if len(page.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(page.Rows))
	}
	if page.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", page.TotalCount)
	}
	if page.TotalPages != 2 {
		t.Fatalf("TotalPages = %d, want 2", page.TotalPages)
	}
	if !page.HasMore {
		t.Error("expected HasMore on page 1 of 2")
	}

	last, err := exec.ExecutePaginated(sq, 2, 1)
	if err != nil {
		t.Fatalf("ExecutePaginated() error: %v", err)
	}
	if last.HasMore {
		t.Error("expected no more pages after page 2")
	}
}

package history

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MalleGowthami/IntelliSQL/internal/models"
)

func TestLogAppendAndOrder(t *testing.T) {
	log := NewLog()

	for i := 0; i < 5; i++ {
		log.Append(models.NewAnswerRecord(fmt.Sprintf("question %d", i)))
	}

	records := log.Records()
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}
	for i, record := range records {
		if want := fmt.Sprintf("question %d", i); record.Question != want {
			t.Errorf("record[%d].Question = %q, want %q", i, record.Question, want)
		}
	}
}

func TestLogClear(t *testing.T) {
	log := NewLog()
	log.Append(models.NewAnswerRecord("q"))

	log.Clear()

	if log.Len() != 0 {
		t.Errorf("log has %d records after clear, want 0", log.Len())
	}

	// The log stays usable after clearing.
	log.Append(models.NewAnswerRecord("again"))
	if log.Len() != 1 {
		t.Errorf("log has %d records, want 1", log.Len())
	}
}

func TestLogRecordsReturnsCopy(t *testing.T) {
	log := NewLog()
	log.Append(models.NewAnswerRecord("original"))

	records := log.Records()
	records[0].Question = "mutated"

	if got := log.Records()[0].Question; got != "original" {
		t.Errorf("mutating the returned slice changed the log: %q", got)
	}
}

func TestLogConcurrentAppends(t *testing.T) {
	log := NewLog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Append(models.NewAnswerRecord("q"))
		}()
	}
	wg.Wait()

	if log.Len() != 50 {
		t.Errorf("got %d records after concurrent appends, want 50", log.Len())
	}
}

package events

import "testing"

func TestQueueDrain(t *testing.T) {
	q := NewQueue()
	q.Push(ScoreChanged{Score: 100})
	q.Push(BaseCountChanged{Bases: 3})

	if q.Len() != 2 {
		t.Fatalf("Expected 2 queued events, got %d", q.Len())
	}

	evs := q.Drain()
	if len(evs) != 2 {
		t.Fatalf("Expected 2 drained events, got %d", len(evs))
	}
	if s, ok := evs[0].(ScoreChanged); !ok || s.Score != 100 {
		t.Errorf("Expected ScoreChanged{100} first, got %#v", evs[0])
	}
	if b, ok := evs[1].(BaseCountChanged); !ok || b.Bases != 3 {
		t.Errorf("Expected BaseCountChanged{3} second, got %#v", evs[1])
	}

	if q.Len() != 0 {
		t.Errorf("Expected queue to be empty after drain, got %d", q.Len())
	}
	if evs := q.Drain(); len(evs) != 0 {
		t.Errorf("Expected empty drain, got %d events", len(evs))
	}
}

func TestSpecialTypeString(t *testing.T) {
	cases := map[SpecialType]string{
		SpecialBall:        "BALL",
		SpecialMissileSide: "MISSILE",
		SpecialMissileDown: "BOMB",
		SpecialStar:        "STAR",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

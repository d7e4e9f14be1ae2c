package session

import "testing"

func TestFlagsAreMutuallyExclusive(t *testing.T) {
	s := New("chat-1", 42)
	if s.SuggestMode || s.AiMode {
		t.Fatal("fresh state must have no flag armed")
	}

	s.EnterSuggestMode()
	if !s.SuggestMode || s.AiMode {
		t.Errorf("after EnterSuggestMode: suggest=%v ai=%v", s.SuggestMode, s.AiMode)
	}

	s.EnterAiMode()
	if s.SuggestMode || !s.AiMode {
		t.Errorf("after EnterAiMode: suggest=%v ai=%v", s.SuggestMode, s.AiMode)
	}

	s.EnterSuggestMode()
	if !s.SuggestMode || s.AiMode {
		t.Errorf("re-arming suggest must disarm ai: suggest=%v ai=%v", s.SuggestMode, s.AiMode)
	}

	s.Clear()
	if s.SuggestMode || s.AiMode {
		t.Errorf("after Clear: suggest=%v ai=%v", s.SuggestMode, s.AiMode)
	}
}

package simplify

import (
	"strings"
	"testing"
)

func TestParseMarkerAndVocabulary(t *testing.T) {
	text := `Simplified Text:
The climate is changing. Humans are the main cause. We burn coal and oil.

Vocabulary:
- emission: gas released into the air
- fossil fuel: coal, oil, or natural gas`

	st := Parse(text)
	if st == nil {
		t.Fatal("Parse returned nil")
	}
	if !strings.HasPrefix(st.Content, "The climate is changing.") {
		t.Errorf("content = %q", st.Content)
	}
	if strings.Contains(st.Content, "Vocabulary") {
		t.Errorf("vocabulary section leaked into content: %q", st.Content)
	}
	if len(st.Vocabulary) != 2 {
		t.Fatalf("vocabulary = %v", st.Vocabulary)
	}
	if st.Vocabulary["emission"] != "gas released into the air" {
		t.Errorf("vocabulary[emission] = %q", st.Vocabulary["emission"])
	}
	if st.HasTiers() {
		t.Error("marker parse must produce the content shape, not tiers")
	}
}

func TestParseChineseMarkers(t *testing.T) {
	text := `简化文本：
全球气候正在变化。人类活动是主要原因。

词汇表：
- 排放：释放到空气中的气体
温室气体：使地球变暖的气体`

	st := Parse(text)
	if st == nil {
		t.Fatal("Parse returned nil")
	}
	if !strings.HasPrefix(st.Content, "全球气候正在变化。") {
		t.Errorf("content = %q", st.Content)
	}
	if st.Vocabulary["排放"] != "释放到空气中的气体" {
		t.Errorf("vocabulary = %v", st.Vocabulary)
	}
	// A vocabulary line without a bullet still counts.
	if st.Vocabulary["温室气体"] != "使地球变暖的气体" {
		t.Errorf("vocabulary = %v", st.Vocabulary)
	}
}

func TestParseDecoratedMarker(t *testing.T) {
	text := "**Simplified Text:**\nShort sentences here.\n\n**Vocabulary:**\n- term: meaning"

	st := Parse(text)
	if st == nil {
		t.Fatal("Parse returned nil")
	}
	if st.Content != "Short sentences here." {
		t.Errorf("content = %q", st.Content)
	}
	if st.Vocabulary["term"] != "meaning" {
		t.Errorf("vocabulary = %v", st.Vocabulary)
	}
}

func TestParseNoMarkerUsesFirstParagraph(t *testing.T) {
	text := "The climate is changing. This is the passage.\n\nSome trailing commentary the model added."

	st := Parse(text)
	if st == nil {
		t.Fatal("Parse returned nil")
	}
	if st.Content != "The climate is changing. This is the passage." {
		t.Errorf("content = %q", st.Content)
	}
	if len(st.Vocabulary) != 0 {
		t.Errorf("vocabulary = %v, want none", st.Vocabulary)
	}
}

func TestParseNoMarkerSingleParagraph(t *testing.T) {
	text := "One simplified paragraph with no markers at all."

	st := Parse(text)
	if st == nil {
		t.Fatal("Parse returned nil")
	}
	if st.Content != text {
		t.Errorf("content = %q", st.Content)
	}
}

func TestParseVocabularyWithoutDefinitionSkipped(t *testing.T) {
	text := "Simplified Text:\nPassage.\n\nVocabulary:\n- loneterm\n- real: definition"

	st := Parse(text)
	if st == nil {
		t.Fatal("Parse returned nil")
	}
	if len(st.Vocabulary) != 1 || st.Vocabulary["real"] != "definition" {
		t.Errorf("vocabulary = %v", st.Vocabulary)
	}
}

func TestParseEmpty(t *testing.T) {
	if st := Parse("  \n "); st != nil {
		t.Errorf("Parse = %+v, want nil", st)
	}
	// A marker with nothing after it is unusable too.
	if st := Parse("Simplified Text:\n\nVocabulary:\n- a: b"); st != nil {
		t.Errorf("Parse = %+v, want nil", st)
	}
}

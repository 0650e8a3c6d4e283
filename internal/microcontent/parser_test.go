package microcontent

import (
	"strings"
	"testing"
)

func TestParseUnitsMarkers(t *testing.T) {
	text := `Unit 1
Learning Objective: Understand what a linked list is
Key Points:
- Nodes hold data and a next pointer
- Elements are not contiguous
Estimated Time: 6 minutes
A linked list is a sequence of nodes connected by pointers.
Check Questions:
- What does a node contain?

Unit 2
Learning Objective: Compare list kinds
Estimated Time: 8 minutes
Singly, doubly, and circular lists differ in their pointers.
Check Questions:
- How does a circular list end?`

	units := ParseUnits(text)
	if len(units) != 2 {
		t.Fatalf("len(units) = %d, want 2", len(units))
	}
	if units[0].UnitNumber != 1 || units[1].UnitNumber != 2 {
		t.Errorf("unit numbers = %d, %d, want 1, 2", units[0].UnitNumber, units[1].UnitNumber)
	}

	u := units[0]
	if u.LearningObjective != "Understand what a linked list is" {
		t.Errorf("objective = %q", u.LearningObjective)
	}
	if len(u.KeyPoints) != 2 || u.KeyPoints[0] != "Nodes hold data and a next pointer" {
		t.Errorf("key points = %v", u.KeyPoints)
	}
	if u.EstimatedTimeMinutes != 6 {
		t.Errorf("time = %d, want 6", u.EstimatedTimeMinutes)
	}
	if len(u.CheckQuestions) != 1 || u.CheckQuestions[0] != "What does a node contain?" {
		t.Errorf("questions = %v", u.CheckQuestions)
	}
	if u.Content != "A linked list is a sequence of nodes connected by pointers." {
		t.Errorf("content = %q, labels not stripped", u.Content)
	}
}

func TestParseUnitsChineseMarkers(t *testing.T) {
	text := `单元1
学习目标：理解链表的概念
要点：
- 节点包含数据和指针
预计时间：5分钟
链表由节点组成。
检查问题：
- 节点包含什么？

第2单元
学习目标：掌握链表操作
预计时间：7分钟
链表支持插入和删除。`

	units := ParseUnits(text)
	if len(units) != 2 {
		t.Fatalf("len(units) = %d, want 2", len(units))
	}
	if units[0].LearningObjective != "理解链表的概念" {
		t.Errorf("objective = %q", units[0].LearningObjective)
	}
	if units[0].EstimatedTimeMinutes != 5 {
		t.Errorf("time = %d, want 5", units[0].EstimatedTimeMinutes)
	}
	if units[1].UnitNumber != 2 || units[1].EstimatedTimeMinutes != 7 {
		t.Errorf("unit 2 = %+v", units[1])
	}
	if !strings.Contains(units[0].Content, "链表由节点组成") {
		t.Errorf("content = %q", units[0].Content)
	}
}

func TestParseUnitsDecoratedMarkers(t *testing.T) {
	text := "## **Unit 1**\nFirst block text.\n\n## **Unit 2**\nSecond block text."

	units := ParseUnits(text)
	if len(units) != 2 {
		t.Fatalf("len(units) = %d, want 2", len(units))
	}
	if units[0].Content != "First block text." || units[1].Content != "Second block text." {
		t.Errorf("contents = %q, %q", units[0].Content, units[1].Content)
	}
}

func TestParseUnitsBlankLineBetweenBlocks(t *testing.T) {
	// Blank-line-separated blocks are the usual model output shape; the
	// marker line after the blank line must not leak into content.
	text := "Unit 1\nFirst block text.\n\nUnit 2\nSecond block text."

	units := ParseUnits(text)
	if len(units) != 2 {
		t.Fatalf("len(units) = %d, want 2", len(units))
	}
	if units[1].Content != "Second block text." {
		t.Errorf("unit 2 content = %q, marker not stripped", units[1].Content)
	}
	if strings.Contains(units[0].Content, "Unit") || strings.Contains(units[1].Content, "Unit") {
		t.Errorf("contents retain marker text: %q, %q", units[0].Content, units[1].Content)
	}
}

func TestParseUnitsNoMarkersFewParagraphs(t *testing.T) {
	text := "AI is intelligence.\n\nAI learns patterns."

	units := ParseUnits(text)
	if len(units) != 1 {
		t.Fatalf("len(units) = %d, want 1", len(units))
	}
	if units[0].Content != text {
		t.Errorf("content = %q, want whole text", units[0].Content)
	}
	if units[0].UnitNumber != 1 {
		t.Errorf("unit number = %d, want 1", units[0].UnitNumber)
	}
	if units[0].EstimatedTimeMinutes != defaultUnitMinutes {
		t.Errorf("time = %d, want %d", units[0].EstimatedTimeMinutes, defaultUnitMinutes)
	}
}

func TestParseUnitsNoMarkersManyParagraphs(t *testing.T) {
	text := "First paragraph.\n\nSecond paragraph.\n\nThird paragraph.\n\nFourth paragraph."

	units := ParseUnits(text)
	if len(units) != 4 {
		t.Fatalf("len(units) = %d, want 4", len(units))
	}
	for i, u := range units {
		if u.UnitNumber != i+1 {
			t.Errorf("units[%d].UnitNumber = %d", i, u.UnitNumber)
		}
		if u.EstimatedTimeMinutes != defaultUnitMinutes {
			t.Errorf("units[%d].EstimatedTimeMinutes = %d", i, u.EstimatedTimeMinutes)
		}
	}
	if units[2].Content != "Third paragraph." {
		t.Errorf("units[2].Content = %q", units[2].Content)
	}
}

func TestParseUnitsEmpty(t *testing.T) {
	if units := ParseUnits("   \n\n  "); units != nil {
		t.Errorf("units = %+v, want nil", units)
	}
}

func TestParseUnitsMissingTimeDefaults(t *testing.T) {
	text := "Unit 1\nSome content without a time label."

	units := ParseUnits(text)
	if len(units) != 1 {
		t.Fatalf("len(units) = %d, want 1", len(units))
	}
	if units[0].EstimatedTimeMinutes != defaultUnitMinutes {
		t.Errorf("time = %d, want default %d", units[0].EstimatedTimeMinutes, defaultUnitMinutes)
	}
}

func TestParseUnitsNumberedKeyPoints(t *testing.T) {
	text := `Unit 1
Key Points:
1. First point
2. Second point
Content here.`

	units := ParseUnits(text)
	if len(units) != 1 {
		t.Fatalf("len(units) = %d, want 1", len(units))
	}
	if len(units[0].KeyPoints) != 2 || units[0].KeyPoints[1] != "Second point" {
		t.Errorf("key points = %v", units[0].KeyPoints)
	}
	if !strings.Contains(units[0].Content, "Content here.") {
		t.Errorf("content = %q", units[0].Content)
	}
}

func TestParseListItemsPriority(t *testing.T) {
	// Bullets win over numbered and plain lines when mixed.
	items := parseListItems([]string{"- bullet one", "1. numbered", "plain line"})
	if len(items) != 1 || items[0] != "bullet one" {
		t.Errorf("items = %v, want bullets only", items)
	}

	items = parseListItems([]string{"1. one", "2) two"})
	if len(items) != 2 || items[1] != "two" {
		t.Errorf("items = %v", items)
	}

	items = parseListItems([]string{"line one", "", "line two"})
	if len(items) != 2 || items[0] != "line one" {
		t.Errorf("items = %v", items)
	}
}

func TestExtractMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"6 minutes", 6},
		{"about 8 mins", 8},
		{"10分钟", 10},
		{"7", 7},
		{"soon", 0},
	}
	for _, tt := range tests {
		if got := extractMinutes(tt.in); got != tt.want {
			t.Errorf("extractMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFallbackUnitsThirds(t *testing.T) {
	content := strings.Repeat("Linked lists connect nodes with pointers. ", 12)

	units := FallbackUnits(content, "en")
	if len(units) != 3 {
		t.Fatalf("len(units) = %d, want 3", len(units))
	}
	wantTimes := []int{5, 7, 8}
	for i, u := range units {
		if u.UnitNumber != i+1 {
			t.Errorf("units[%d].UnitNumber = %d", i, u.UnitNumber)
		}
		if u.EstimatedTimeMinutes != wantTimes[i] {
			t.Errorf("units[%d].EstimatedTimeMinutes = %d, want %d", i, u.EstimatedTimeMinutes, wantTimes[i])
		}
		if u.LearningObjective == "" || len(u.CheckQuestions) != 1 {
			t.Errorf("units[%d] missing objective or question: %+v", i, u)
		}
	}
}

func TestFallbackUnitsChinese(t *testing.T) {
	content := strings.Repeat("链表是一种线性数据结构。", 10)

	units := FallbackUnits(content, "zh")
	if len(units) != 3 {
		t.Fatalf("len(units) = %d, want 3", len(units))
	}
	if units[0].LearningObjective != "理解核心概念" {
		t.Errorf("objective = %q", units[0].LearningObjective)
	}
}

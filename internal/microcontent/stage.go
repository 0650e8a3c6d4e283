package microcontent

import (
	"context"
	"fmt"
	"strings"

	"github.com/fairedu/adapt/internal/highlight"
	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/state"
)

// Config holds micro-content stage settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Language    string
}

// DefaultConfig returns sensible defaults for content division.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4000,
		Temperature: 0.7,
		Language:    "en",
	}
}

// placeholder material substituted when a run arrives without content.
// A development convenience so stages always have something to operate
// on; its use is recorded in the interaction history.
const placeholderContentEN = `Data Structures Basics - Linked Lists

A linked list is a common linear data structure made of a sequence of nodes, where each node holds a data field and a reference to the next node. Unlike arrays, linked list elements are not stored contiguously in memory; they are connected through pointers.

There are three main kinds of linked list: singly linked, doubly linked, and circular. A node in a singly linked list has one pointer to the next node; a doubly linked node points to both its predecessor and successor; a circular list connects its last node back to the first.

Linked list operations include insertion, deletion, search, and traversal. Compared with arrays, linked lists insert and delete more efficiently, in O(1) time, but searching is slower at O(n).`

const placeholderContentZH = `数据结构基础 - 链表

链表是一种常见的线性数据结构，由一系列节点组成，每个节点包含数据字段和指向下一个节点的引用。与数组不同，链表元素在内存中不是连续存储的，而是通过指针连接。

链表主要分为三种类型：单链表、双向链表和循环链表。单链表中的节点只有一个指向下一节点的指针；双向链表的节点有两个指针，分别指向前驱和后继节点；循环链表是首尾相连的链表，最后一个节点指向第一个节点。

链表操作包括：插入、删除、查找和遍历。与数组相比，链表在插入和删除操作上更高效，时间复杂度为O(1)，但查找操作效率较低，时间复杂度为O(n)。`

func placeholderContent(language string) string {
	if language == "zh" {
		return placeholderContentZH
	}
	return placeholderContentEN
}

// Stage divides the material into micro-units.
type Stage struct {
	provider   llm.Provider
	cfg        Config
	highlights *highlight.Engine // optional, nil disables highlighting
}

// NewStage creates the micro-content divider stage. A nil engine
// disables highlighting regardless of learner preference.
func NewStage(provider llm.Provider, cfg Config, highlights *highlight.Engine) *Stage {
	return &Stage{provider: provider, cfg: cfg, highlights: highlights}
}

// Run divides the material and merges the units into the state. All
// gateway and parse failures are absorbed: the fallback is a thirds
// split of the material into three default units.
func (s *Stage) Run(ctx context.Context, st *state.ProcessingState) *state.ProcessingState {
	ctx = llm.WithPurpose(ctx, "micro-content")
	out := st.Clone()

	content := out.LearningMaterials.CurrentContent
	usedPlaceholder := false
	if content == "" {
		content = placeholderContent(s.cfg.Language)
		out.LearningMaterials.CurrentContent = content
		usedPlaceholder = true
	}

	req := llm.Request{
		System: BuildSystemPrompt(s.cfg.Language, out.UserProfile.AttentionSpanMinutes()),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(content, s.cfg.Language)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
		Language:    s.cfg.Language,
	}

	var units []state.MicroUnit
	fellBack := false

	resp, err := s.provider.Generate(ctx, req)
	if err == nil {
		units = ParseUnits(resp.Text())
	}
	if len(units) == 0 {
		units = FallbackUnits(content, s.cfg.Language)
		fellBack = true
	}

	if s.highlights != nil && out.UserProfile.WantsHighlighting() {
		diff := out.UserProfile.DifficultyType()
		if out.ProcessedContent.Highlighted == nil {
			out.ProcessedContent.Highlighted = map[string]string{}
		}
		for _, u := range units {
			key := fmt.Sprintf("micro_unit_%d", u.UnitNumber)
			out.ProcessedContent.Highlighted[key] = s.highlights.Highlight(ctx, u.Content, diff)
		}
	}

	out.ProcessedContent.MicroUnits = units
	out.CurrentFocus = state.FocusMicroContentDone

	memos := []string{fmt.Sprintf("divided material into %d units", len(units))}
	if usedPlaceholder {
		memos = append(memos, "no material provided, substituted placeholder content")
	}
	if fellBack {
		memos = append(memos, "model output unusable, applied thirds split")
	}
	out.AppendHistory("micro_content_divider", "llm", memos...)

	return out
}

// FallbackUnits is the deterministic failure fallback: the material cut
// into thirds with default objectives and times.
func FallbackUnits(content, language string) []state.MicroUnit {
	runes := []rune(content)
	third := len(runes) / 3

	objectives := []string{
		"Understand the core concepts",
		"Master the important details",
		"Apply what you learned",
	}
	questions := []string{
		"Can you explain this concept in your own words?",
		"How does this connect to what you learned before?",
		"Can you apply this knowledge to a real problem?",
	}
	if language == "zh" {
		objectives = []string{"理解核心概念", "掌握重要细节", "应用所学知识"}
		questions = []string{"你能用自己的话解释这个概念吗？", "这个概念与之前学习的内容有什么联系？", "你能应用这些知识解决实际问题吗？"}
	}

	times := []int{5, 7, 8}
	cuts := [][2]int{{0, third}, {third, 2 * third}, {2 * third, len(runes)}}

	units := make([]state.MicroUnit, 0, 3)
	for i, cut := range cuts {
		text := strings.TrimSpace(string(runes[cut[0]:cut[1]]))
		if text == "" {
			continue
		}
		units = append(units, state.MicroUnit{
			Content:              text,
			UnitNumber:           i + 1,
			EstimatedTimeMinutes: times[i],
			LearningObjective:    objectives[i],
			CheckQuestions:       []string{questions[i]},
		})
	}

	if len(units) == 0 {
		units = append(units, state.MicroUnit{
			Content:              content,
			UnitNumber:           1,
			EstimatedTimeMinutes: defaultUnitMinutes,
		})
	}
	return units
}

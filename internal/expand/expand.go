// Package expand generates full educational content for each
// micro-unit, grounded in the original material and shaped by the
// learner's profile analysis.
package expand

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/state"
)

// Config holds content-expansion settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Language    string
}

// DefaultConfig returns sensible defaults for content expansion.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4000,
		Temperature: 0.7,
		Language:    "en",
	}
}

const systemPromptEN = `You are an educational content designer supporting students with learning difficulties. Using the unit outline and the original material below, write the full learning content for this one unit.

Requirements:
1. Cover every key point the unit outline mentions.
2. Use clear, concise language and avoid complex sentence structures.
3. Include examples, analogies, or visual descriptions that aid understanding.
4. Keep the content structured with headings, bullet points, and short paragraphs.
5. Fit the length to the unit's estimated completion time.
6. End with the unit's check questions and short reference answers.

Output the content in Markdown.`

const systemPromptZH = `你是一位专门为有学习障碍的学生设计教育内容的内容设计师。请根据以下微内容单元的概要和原始学习材料，为这一个单元生成详细的学习内容。

要求：
1. 内容完全覆盖单元概要中提到的所有关键点。
2. 使用清晰、简洁的语言，避免复杂的句式。
3. 包含适当的示例、类比或视觉描述以增强理解。
4. 保持内容的结构化，使用标题、项目符号和短段落。
5. 内容长度适合单元的估计完成时间。
6. 在内容末尾包含单元概要中提到的理解检查问题，并提供简短的参考答案。

请以Markdown格式输出内容。`

// Expander generates detailed content per unit.
type Expander struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Expander.
func New(provider llm.Provider, cfg Config) *Expander {
	return &Expander{provider: provider, cfg: cfg}
}

// Run expands every micro-unit in the state. A unit whose generation
// fails keeps its outline content as the detailed content; one bad unit
// never aborts the batch. Without micro-units the state is returned
// unchanged.
func (e *Expander) Run(ctx context.Context, st *state.ProcessingState) *state.ProcessingState {
	if len(st.ProcessedContent.MicroUnits) == 0 {
		return st
	}

	ctx = llm.WithPurpose(ctx, "content-expand")
	out := st.Clone()

	material := out.LearningMaterials.CurrentContent
	analysis := out.UserProfile.Analysis

	detailed := make([]state.DetailedUnit, 0, len(out.ProcessedContent.MicroUnits))
	failed := 0
	for _, unit := range out.ProcessedContent.MicroUnits {
		content, err := e.expandUnit(ctx, material, unit, analysis)
		if err != nil || strings.TrimSpace(content) == "" {
			content = unit.Content
			failed++
		}
		detailed = append(detailed, state.DetailedUnit{
			UnitNumber:           unit.UnitNumber,
			EstimatedTimeMinutes: unit.EstimatedTimeMinutes,
			Summary:              unit.Content,
			DetailedContent:      content,
		})
	}

	out.ProcessedContent.DetailedUnits = detailed
	out.CurrentFocus = state.FocusContentGenerated

	memos := []string{fmt.Sprintf("expanded %d units into detailed content", len(detailed))}
	if failed > 0 {
		memos = append(memos, fmt.Sprintf("%d units kept their outline text after generation failure", failed))
	}
	out.AppendHistory("content_generator", "llm", memos...)

	return out
}

func (e *Expander) expandUnit(ctx context.Context, material string, unit state.MicroUnit, analysis *state.Analysis) (string, error) {
	system := systemPromptEN
	if e.cfg.Language == "zh" {
		system = systemPromptZH
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUnitMessage(material, unit, analysis, e.cfg.Language)},
		},
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
		Language:    e.cfg.Language,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func buildUnitMessage(material string, unit state.MicroUnit, analysis *state.Analysis, language string) string {
	headings := [3]string{"## Original material:", "## Unit outline:", "## Learner profile:"}
	if language == "zh" {
		headings = [3]string{"## 原始学习材料：", "## 微内容单元概要：", "## 用户学习障碍信息："}
	}

	var b strings.Builder
	b.WriteString(headings[0] + "\n")
	b.WriteString(material)
	b.WriteString("\n\n" + headings[1] + "\n")
	b.WriteString(formatUnit(unit))
	b.WriteString("\n\n" + headings[2] + "\n")
	b.WriteString(formatAnalysis(analysis))
	return b.String()
}

func formatUnit(unit state.MicroUnit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Unit %d (%d minutes)\n", unit.UnitNumber, unit.EstimatedTimeMinutes)
	if unit.LearningObjective != "" {
		fmt.Fprintf(&b, "Learning Objective: %s\n", unit.LearningObjective)
	}
	for _, p := range unit.KeyPoints {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	b.WriteString(unit.Content)
	if len(unit.CheckQuestions) > 0 {
		b.WriteString("\nCheck Questions:\n")
		for _, q := range unit.CheckQuestions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}
	return b.String()
}

func formatAnalysis(analysis *state.Analysis) string {
	if analysis == nil {
		return "{}"
	}
	data, err := json.Marshal(analysis)
	if err != nil {
		return "{}"
	}
	return string(data)
}

package profile

import "github.com/fairedu/adapt/internal/state"

// DefaultAnalysis is the conservative classification used whenever the
// assessment cannot run or its response cannot be parsed. Downstream
// stages must never be blocked for lack of a classification.
func DefaultAnalysis() *state.Analysis {
	return &state.Analysis{
		DifficultyType: state.DifficultyADHD,
		SeverityLevel:  3,
		SpecificFeatures: map[string]any{
			"attention": map[string]any{
				"sustained_attention": "moderately reduced, sustains focus for about 30 minutes",
				"selective_attention": "attention drops on uninteresting content",
				"divided_attention":   "some difficulty switching tasks",
			},
			"executive_function": map[string]any{
				"organization":   "moderate difficulty, needs help planning complex tasks",
				"working_memory": "mildly reduced, occasionally forgets tasks",
			},
		},
		Strengths: map[string]any{
			"hyper_focus":        "may show strong focus on topics of interest",
			"divergent_thinking": "some capacity for divergent thinking",
		},
	}
}

// DefaultStrategies returns canned support strategies for the given
// classification. Used when the model recommends none.
func DefaultStrategies(diff state.DifficultyType, language string) *state.SupportStrategies {
	if language == "zh" {
		return defaultStrategiesZH(diff)
	}
	return defaultStrategiesEN(diff)
}

func defaultStrategiesEN(diff state.DifficultyType) *state.SupportStrategies {
	switch diff {
	case state.DifficultyDyslexia:
		return &state.SupportStrategies{
			Primary: []string{
				"Syntax simplification: break long sentences into short, clear statements",
				"Vocabulary support: provide definitions for difficult or technical terms",
				"Structured layout: use headings, short paragraphs, and generous spacing",
			},
			Secondary: []string{
				"Text-to-speech: pair reading with audio where available",
				"Pre-reading questions: prime comprehension before reading",
			},
		}
	case state.DifficultyCombined:
		return &state.SupportStrategies{
			Primary: []string{
				"Task breakdown: divide material into units completable in 15-20 minutes",
				"Syntax simplification: break long sentences into short, clear statements",
				"Highlighting: mark key concepts and difficult vocabulary",
			},
			Secondary: []string{
				"Environment optimization: reduce major distractions",
				"Regular breaks: schedule a short break every 20 minutes",
			},
		}
	case state.DifficultyNone:
		return &state.SupportStrategies{
			Primary: []string{
				"Structured presentation: keep material organized with clear sections",
			},
		}
	default: // ADHD
		return &state.SupportStrategies{
			Primary: []string{
				"Task breakdown: divide complex tasks into units completable in 20-30 minutes",
				"Time management: use visual timers to strengthen time perception",
				"Reminder system: establish basic reminders to prevent forgetting",
			},
			Secondary: []string{
				"Environment optimization: reduce major distractions",
				"Regular breaks: schedule a short break every 30 minutes",
			},
		}
	}
}

func defaultStrategiesZH(diff state.DifficultyType) *state.SupportStrategies {
	switch diff {
	case state.DifficultyDyslexia:
		return &state.SupportStrategies{
			Primary: []string{
				"句法简化：将长句分解为简短清晰的表达",
				"词汇支持：为困难或专业词汇提供解释",
				"结构化排版：使用标题、短段落和充足的间距",
			},
			Secondary: []string{
				"语音辅助：在可能时结合朗读",
				"预读问题：阅读前先提出理解问题",
			},
		}
	case state.DifficultyCombined:
		return &state.SupportStrategies{
			Primary: []string{
				"任务分解：将材料分解为15-20分钟可完成的小单元",
				"句法简化：将长句分解为简短清晰的表达",
				"重点标注：标记关键概念和困难词汇",
			},
			Secondary: []string{
				"环境优化：减少主要分心因素",
				"定期休息：每20分钟安排短暂休息",
			},
		}
	case state.DifficultyNone:
		return &state.SupportStrategies{
			Primary: []string{
				"结构化呈现：保持材料组织清晰、分节明确",
			},
		}
	default: // ADHD
		return &state.SupportStrategies{
			Primary: []string{
				"任务分解：将复杂任务分解为20-30分钟可完成的小单元",
				"时间管理：使用视觉计时器增强时间感知",
				"提醒系统：建立基本提醒系统防止遗忘",
			},
			Secondary: []string{
				"环境优化：减少主要分心因素",
				"定期休息：每30分钟安排短暂休息",
			},
		}
	}
}

package microcontent

import (
	"fmt"
	"strings"
)

const systemPromptEN = `You are an educational content designer supporting learners with ADHD. Your task is to divide learning material into micro-units that each take 5-10 minutes to complete.

For each unit:
1. Find natural semantic break points in the material.
2. Estimate completion time from cognitive load, not just length.
3. State one clear learning objective.
4. List the key points covered.
5. End with one or two comprehension-check questions.

Format every unit exactly like this:

Unit <number>
Learning Objective: <one sentence>
Key Points:
- <point>
- <point>
Estimated Time: <n> minutes
<the unit's content>
Check Questions:
- <question>`

const systemPromptZH = `你是一位支持ADHD学习者的教育内容设计师。你的任务是将学习材料分解为每个5-10分钟可完成的微学习单元。

对每个单元：
1. 在材料中寻找自然的语义断点。
2. 按认知负荷而非仅按长度估算完成时间。
3. 给出一个明确的学习目标。
4. 列出涵盖的要点。
5. 以一到两个理解检查问题结束。

每个单元严格按以下格式输出：

单元<编号>
学习目标：<一句话>
要点：
- <要点>
- <要点>
预计时间：<n>分钟
<该单元的内容>
检查问题：
- <问题>`

// BuildSystemPrompt returns the division prompt in the target language,
// tightened to the learner's attention span when one is known.
func BuildSystemPrompt(language string, attentionSpanMinutes int) string {
	prompt := systemPromptEN
	if language == "zh" {
		prompt = systemPromptZH
	}

	if attentionSpanMinutes > 0 && attentionSpanMinutes < 10 {
		if language == "zh" {
			prompt += fmt.Sprintf("\n\n该学习者的平均注意力持续时间约为%d分钟，请确保每个单元不超过这个时长。", attentionSpanMinutes)
		} else {
			prompt += fmt.Sprintf("\n\nThis learner's average attention span is about %d minutes; keep every unit within that.", attentionSpanMinutes)
		}
	}
	return prompt
}

func buildUserMessage(content, language string) string {
	var b strings.Builder
	if language == "zh" {
		b.WriteString("请将以下学习材料分解为微学习单元：\n\n")
	} else {
		b.WriteString("Please divide the following learning material into micro-units:\n\n")
	}
	b.WriteString(content)
	return b.String()
}

package gemini

import "testing"

func TestExtractJSON_Plain(t *testing.T) {
	got := extractJSON(`{"courseTitle":"Biology"}`)
	if got != `{"courseTitle":"Biology"}` {
		t.Errorf("裸 JSON 应原样返回，实际=%q", got)
	}
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	raw := "Here is the extracted data:\n```json\n{\"courseTitle\":\"Biology\"}\n```\nLet me know if you need more."
	got := extractJSON(raw)
	if got != `{"courseTitle":"Biology"}` {
		t.Errorf("应剥离 markdown 围栏，实际=%q", got)
	}
}

func TestExtractJSON_BareFence(t *testing.T) {
	raw := "```\n{\"courseTitle\":\"Biology\"}\n```"
	got := extractJSON(raw)
	if got != `{"courseTitle":"Biology"}` {
		t.Errorf("应剥离无语言标记的围栏，实际=%q", got)
	}
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := `Sure! {"courseTitle":"Biology","keyDates":{"exams":[]}} Hope this helps.`
	got := extractJSON(raw)
	if got != `{"courseTitle":"Biology","keyDates":{"exams":[]}}` {
		t.Errorf("应截取首尾花括号之间的对象，实际=%q", got)
	}
}

func TestExtractJSON_Invalid(t *testing.T) {
	for _, raw := range []string{"no json here", "{broken", "{\"a\": }"} {
		if got := extractJSON(raw); got != "" {
			t.Errorf("非法输入 %q 应返回空串，实际=%q", raw, got)
		}
	}
}

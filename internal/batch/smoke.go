package batch

// SmokeRecords exercises every shipped round once with a short budget.
func SmokeRecords() []InputRecord {
	records := []RoundRecord{
		{ID: "smoke-coding", Round: "coding", Question: "Implement quicksort algorithm", Difficulty: "medium", MaxTokens: 120},
		{ID: "smoke-technical", Round: "technical", Question: "Explain Docker vs Kubernetes", MaxTokens: 100},
		{ID: "smoke-system-design", Round: "system_design", Question: "Design Instagram architecture", MaxTokens: 150},
		{ID: "smoke-hr", Round: "hr", Question: "Why do you want to work here?", MaxTokens: 100},
		{ID: "smoke-behavioral", Round: "behavioral", Question: "Tell me about a time you faced a challenge", MaxTokens: 120},
		{ID: "smoke-database", Round: "database", Question: "Explain database normalization", MaxTokens: 100},
		{ID: "smoke-frontend", Round: "frontend", Question: "What is React Virtual DOM?", MaxTokens: 100},
		{ID: "smoke-backend", Round: "backend", Question: "How to handle API rate limiting?", MaxTokens: 120},
		{ID: "smoke-code-review", Round: "code_review", Code: "for i in range(len(arr)):\n    print(arr[i])", Language: "python", MaxTokens: 80},
		{ID: "smoke-mock-interview", Round: "mock_interview", Question: "Walk me through a REST API you designed", MaxTokens: 120},
	}

	out := make([]InputRecord, len(records))
	for i, r := range records {
		out[i] = InputRecord{LineNumber: i + 1, Request: r}
	}
	return out
}

package friday

// TruncateHistory bounds a conversation history for prompt building. It
// applies the message limit first, then drops oldest messages until the
// estimated token total fits tokenLimit. The most recent messages are
// preserved. The input slice is not modified.
func TruncateHistory(history []Message, tokenLimit, messageLimit int) []Message {
	if len(history) == 0 {
		return history
	}

	if messageLimit > 0 && len(history) > messageLimit {
		history = history[len(history)-messageLimit:]
	}

	if tokenLimit <= 0 {
		return history
	}

	totalTokens := 0
	for _, msg := range history {
		totalTokens += EstimateTokens(msg.Text)
	}

	for totalTokens > tokenLimit && len(history) > 0 {
		totalTokens -= EstimateTokens(history[0].Text)
		history = history[1:]
	}

	return history
}

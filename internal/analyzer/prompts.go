package analyzer

const systemPrompt = `You are Scribe, an analyst that turns WhatsApp conversations into structured insight. You summarise faithfully, you never invent participants or commitments that are not in the transcript, and you respond with valid JSON only.`

const analysisUserPrompt = `You are analyzing a WhatsApp conversation between %s.

Please analyze this conversation and provide:

1. **Summary**: A concise 2-3 paragraph summary of the conversation covering main topics and key points
2. **Sentiment Analysis**: Overall sentiment (positive/negative/neutral/mixed) with a confidence score and brief explanation
3. **Individual Sentiments**: Sentiment for each participant
4. **Key Topics**: Main topics discussed (as a list)
5. **Actionables**: Extract any action items, tasks, commitments, or things that need to be done. Include:
   - What needs to be done
   - Who is responsible (if mentioned)
   - Deadline (if mentioned)
   - Priority indicators (if any)
   - Context

Return your analysis in the following JSON format:

{
  "summary": "Your detailed summary here...",
  "overall_sentiment": {
    "sentiment": "positive|negative|neutral|mixed",
    "confidence": 0.85,
    "explanation": "Brief explanation of the sentiment"
  },
  "participant_sentiments": [
    {
      "participant": "Name",
      "sentiment": "positive|negative|neutral",
      "explanation": "Brief explanation"
    }
  ],
  "key_topics": [
    "Topic 1",
    "Topic 2"
  ],
  "actionables": [
    {
      "action": "What needs to be done",
      "assignee": "Who (or 'Not specified')",
      "deadline": "When (or 'Not specified')",
      "priority": "high|medium|low|not specified",
      "context": "Brief context from the conversation",
      "mentioned_at": "Approximate timestamp or 'recent' for latest"
    }
  ],
  "conversation_insights": {
    "tone": "formal|informal|casual|professional",
    "engagement_level": "high|medium|low",
    "key_points": ["Point 1", "Point 2"]
  }
}

Here is the WhatsApp conversation to analyze:

---START CONVERSATION---
%s
---END CONVERSATION---

Provide your analysis in valid JSON format only, no additional text.`

const quickSummaryPrompt = `Provide a brief 2-3 sentence summary of this WhatsApp conversation:

%s

Be concise and focus on the main points.`

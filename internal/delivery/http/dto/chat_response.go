package dto

type ChatMessageResponse struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Sender      string `json:"sender"`
	Timestamp   string `json:"timestamp"`
	ActionLabel string `json:"action_label,omitempty"`
	ActionPath  string `json:"action_path,omitempty"`
}

type ChatSubmitResponse struct {
	UserMessage ChatMessageResponse  `json:"user_message"`
	BotMessage  *ChatMessageResponse `json:"bot_message,omitempty"`
}

type ChatHistoryResponse struct {
	Messages    []ChatMessageResponse `json:"messages"`
	Preferences PreferenceResponse    `json:"preferences"`
}

type PreferenceResponse struct {
	Place      string `json:"place,omitempty"`
	Category   string `json:"category,omitempty"`
	WorkDays   string `json:"work_days,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	HourlyWage int    `json:"hourly_wage,omitempty"`
}

package dashboard

// View is the presentation surface the controller writes to. It maps onto the
// five addressable regions of the dashboard page: the stock bar, the news
// container, the question input, the ask control, and the answer box.
type View interface {
	// RenderTicker replaces the stock bar content with the given fragment.
	RenderTicker(html string)

	// RenderNews replaces the news container content with the given fragment.
	RenderNews(html string)

	// RenderFeedError replaces the news container with the shared message
	// view carrying the given text.
	RenderFeedError(message string)

	// SetAnswer writes text into the answer box.
	SetAnswer(text string)

	// SetAskBusy toggles the working state of the ask control and answer
	// area: disabled control, working label, dimmed answer box while true.
	SetAskBusy(busy bool)

	// ClearQuestion empties the question input.
	ClearQuestion()
}

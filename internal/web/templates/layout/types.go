package layout

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string // "success", "info" or "error"
	Message string
}

// PageData holds the data every page shares
type PageData struct {
	Title string
	Flash *FlashMessage
}

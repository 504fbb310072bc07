package normalize

import (
	"strings"

	"florabot/internal/models"
)

// statusLabels maps internal status codes to display text.
var statusLabels = map[string]string{
	models.StatusAccepted:   "Accepted ✅",
	models.StatusAssembling: "Assembling 💐",
	models.StatusCourier:    "Out for delivery 🚚",
	models.StatusDelivered:  "Delivered 🎉",
	models.StatusCanceled:   "Canceled ❌",
}

// StatusLabel renders a status code for humans. An empty code means the
// order was just accepted; unknown codes written by older bot revisions
// are title-cased and passed through.
func StatusLabel(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return statusLabels[models.StatusAccepted]
	}
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return strings.ToUpper(code[:1]) + code[1:]
}

package platform

import "time"

// AppName is reported to notification daemons.
const AppName = "thumbforge"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath points to an image shown with the notification where the
	// platform supports it.
	IconPath string
	// Expire is how long the notification stays visible. Zero uses the
	// platform default.
	Expire time.Duration
}

func (o Options) expireMillis() int32 {
	if o.Expire <= 0 {
		return -1
	}
	return int32(o.Expire / time.Millisecond)
}

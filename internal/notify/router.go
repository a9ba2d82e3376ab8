package notify

import (
	"fmt"

	"billd/internal/model"
)

// Router decides the delivery channel for a fired reminder. All side
// effects are fire-and-forget: a failing backend never propagates an
// error into the evaluation pipeline.
type Router struct {
	notifier   Notifier
	audio      Audio
	permission Permission
}

func NewRouter(notifier Notifier, audio Audio) *Router {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if audio == nil {
		audio = NoopAudio{}
	}
	return &Router{
		notifier:   notifier,
		audio:      audio,
		permission: PermissionUndetermined,
	}
}

// RequestPermission probes the notification backend once at startup.
// Denied permission degrades background delivery to audio-only.
func (r *Router) RequestPermission() Permission {
	if r.permission != PermissionUndetermined {
		return r.permission
	}
	type prober interface{ Available() bool }
	r.permission = PermissionDenied
	if p, ok := r.notifier.(prober); ok && p.Available() {
		r.permission = PermissionGranted
	}
	return r.permission
}

func (r *Router) Permission() Permission {
	return r.permission
}

// Route delivers one fired reminder. The audio cue always plays (per
// the reminder's sound). In the background an OS notification is sent
// when permission is granted, silent unless the sound is default. In
// the foreground the reminder is returned for in-app toast display and
// no OS notification is emitted.
func (r *Router) Route(rem model.Reminder, vis Visibility) (toast bool) {
	playCue(r.audio, rem.Sound)

	if vis == VisibilityForeground {
		return true
	}
	if r.permission == PermissionGranted {
		_ = r.notifier.Send(Notification{
			Title:  rem.BillName,
			Body:   fmt.Sprintf("%s due: %s", rem.BillName, rem.Amount.StringFixed(2)),
			Silent: rem.Sound != model.SoundDefault,
		})
	}
	return false
}

package ui

import (
	"fmt"
	"time"

	"github.com/ytraddan/storefront/internal/catalog"
)

// notice is a transient status line shown under the catalog. While it is
// active and carries an undo command, the undo key compensates that mutation.
type notice struct {
	text  string
	undo  *catalog.Command
	isErr bool
	until time.Time
}

func (n notice) active() bool {
	return n.text != ""
}

// undoNotice announces an applied mutation and arms the undo window.
func undoNotice(cmd *catalog.Command) notice {
	return notice{
		text:  fmt.Sprintf("%q %s (press u to undo)", cmd.Title, cmd.Kind),
		undo:  cmd,
		until: time.Now().Add(noticeWindow),
	}
}

// plainNotice shows a message with no undo attached.
func plainNotice(text string) notice {
	return notice{
		text:  text,
		until: time.Now().Add(noticeWindow),
	}
}

// failureNotice shows a local operation failure.
func failureNotice(prefix string, err error) notice {
	return notice{
		text:  fmt.Sprintf("%s: %v", prefix, err),
		isErr: true,
		until: time.Now().Add(noticeWindow),
	}
}

// errorNotice reports an API failure whose optimistic write was rolled back.
func errorNotice(ev catalog.Event) notice {
	return notice{
		text:  fmt.Sprintf("%q could not be %s, change rolled back: %v", ev.Title, ev.Kind, ev.Err),
		isErr: true,
		until: time.Now().Add(noticeWindow),
	}
}

package ui

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}

		Convey("Views without a notification are unchanged", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("Notifications are shown and cleared", func() {
			msg := Notify("Removed from history")()
			So(m.Update(msg), ShouldNotBeNil)
			So(m.Notification(), ShouldEqual, "Removed from history")
			So(m.View("a\nb"), ShouldContainSubstring, "Removed from history")
			So(m.View("a\nb"), ShouldStartWith, "a\nb")

			m.Update(ClearNotificationMsg{at: m.notifiedAt})
			So(m.Notification(), ShouldBeEmpty)
		})

		Convey("Stale clear messages are ignored", func() {
			m.Update(Notify("first")())
			stale := ClearNotificationMsg{at: m.notifiedAt.Add(-time.Second)}
			m.Update(stale)
			So(m.Notification(), ShouldEqual, "first")
		})
	})
}

package tracker

import (
	"log"
	"strings"
)

//EventSink receives shot lifecycle notifications from the tracker. It is
//purely an output: implementations must not call back into the tracker.
type EventSink interface {
	//SnapshotReport receives the per colour count comparison table emitted
	//when a shot finishes.
	SnapshotReport(report string)
	//WhiteStatus receives white ball moving/stopped transitions.
	WhiteStatus(moving bool)
	//BallPotted receives the pot event resolved at the end of a shot.
	BallPotted(colour string, count int)
}

//LogSink writes every tracking event to the standard logger.
type LogSink struct{}

func (LogSink) SnapshotReport(report string) {
	log.Printf("Snapshot comparison:\n%s", report)
}

func (LogSink) WhiteStatus(moving bool) {
	if moving {
		log.Print("WHITE STATUS: moving...")
	} else {
		log.Print("WHITE STATUS: stopped...")
	}
}

func (LogSink) BallPotted(colour string, count int) {
	log.Printf("Potted %d %s/s", count, strings.ToLower(colour))
}

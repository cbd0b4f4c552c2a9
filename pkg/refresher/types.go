package refresher

import (
	"time"

	"link-refresh-go/pkg/models"
)

// PacingDelay is the pause after every link, the last one included.
const PacingDelay = 1000 * time.Millisecond

// Stage represents the current stage of a refresh run
type Stage string

const (
	StageStarted  Stage = "started"
	StageFetching Stage = "fetching"
	StageRecorded Stage = "recorded"
	StageComplete Stage = "complete"
)

// ProgressCallback is called to report progress during a run.
//
// StageStarted and StageComplete carry the header and footer text with a
// nil outcome. StageFetching carries an outcome holding only the link
// being requested and no line. StageRecorded carries the finished outcome
// and the line appended to the run log.
type ProgressCallback func(stage Stage, outcome *models.Outcome, line string)

const (
	noLinksMessage = "No valid links found in links.txt. Script did not run."
	divider        = "---------------------------------------"
)

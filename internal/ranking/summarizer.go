package ranking

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"surveyrank/internal/survey"
)

// EmptyCoursePolicy decides where a course with zero present responses ends
// up. The mean of nothing is undefined, but the sort must stay total.
type EmptyCoursePolicy string

const (
	// EmptyCourseRankLast keeps the course, ordered after every real mean.
	EmptyCourseRankLast EmptyCoursePolicy = "rank_last"
	// EmptyCourseExclude omits the course from the summary entirely.
	EmptyCourseExclude EmptyCoursePolicy = "exclude"
)

// CourseSummary is one row of the final report.
type CourseSummary struct {
	CourseName string
	// N is the count of present responses for the course.
	N int
	// MeanRank is the arithmetic mean of present ranks; NaN when N is 0.
	MeanRank float64
	// FinalRank is the dense 1-based position after sorting ascending by
	// mean rank. Unique even on ties.
	FinalRank int
}

// Summarizer aggregates a RankTable into the sorted course summary.
type Summarizer struct {
	logger *slog.Logger
	policy EmptyCoursePolicy
}

// NewSummarizer creates a summarizer. An unrecognized policy falls back to
// EmptyCourseRankLast; a nil logger falls back to slog.Default().
func NewSummarizer(logger *slog.Logger, policy EmptyCoursePolicy) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	if policy != EmptyCourseExclude {
		policy = EmptyCourseRankLast
	}
	return &Summarizer{logger: logger, policy: policy}
}

// Summarize computes n and mean rank per course, sorts ascending by mean
// with a stable sort (ties keep the course order of the input table), and
// assigns dense 1-based final ranks. An empty table yields an empty summary.
func (s *Summarizer) Summarize(ctx context.Context, rt *survey.RankTable) []CourseSummary {
	summaries := make([]CourseSummary, 0, len(rt.Courses))

	for i, course := range rt.Courses {
		present := make([]float64, 0, len(rt.Ranks[i]))
		for _, v := range rt.Ranks[i] {
			if v != nil {
				present = append(present, *v)
			}
		}

		mean := math.NaN()
		if len(present) > 0 {
			// stats.Mean only errors on empty input, which is excluded here.
			mean, _ = stats.Mean(present)
		}

		if len(present) == 0 && s.policy == EmptyCourseExclude {
			s.logger.InfoContext(ctx, "excluding course with no responses",
				slog.String("course", course.Name),
				slog.Int("source_position", course.SourcePosition))
			continue
		}

		summaries = append(summaries, CourseSummary{
			CourseName: course.Name,
			N:          len(present),
			MeanRank:   mean,
		})
	}

	// Stable sort keeps input order on equal means, which is the tie-break
	// rule. NaN means sort as +Inf so all-missing courses land last.
	sort.SliceStable(summaries, func(i, j int) bool {
		return sortKey(summaries[i].MeanRank) < sortKey(summaries[j].MeanRank)
	})

	for i := range summaries {
		summaries[i].FinalRank = i + 1
	}

	s.logger.InfoContext(ctx, "course summary computed",
		slog.Int("courses", len(summaries)),
		slog.String("empty_course_policy", string(s.policy)))

	return summaries
}

func sortKey(mean float64) float64 {
	if math.IsNaN(mean) {
		return math.Inf(1)
	}
	return mean
}

package exporter

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "surveyrank/internal/errors"
	"surveyrank/internal/ranking"
)

func TestWriteSummary_ReadSummary_RoundTrip(t *testing.T) {
	summaries := []ranking.CourseSummary{
		{CourseName: "Audit", N: 12, MeanRank: 1.4166666666666667, FinalRank: 1},
		{CourseName: "Taxation", N: 11, MeanRank: 2.5, FinalRank: 2},
		{CourseName: "", N: 9, MeanRank: 3.0000000000000004, FinalRank: 3},
	}

	path := filepath.Join(t.TempDir(), "course_rankings.csv")
	require.NoError(t, NewCSVWriter(nil).WriteSummary(path, summaries))

	got, err := ReadSummary(path)
	require.NoError(t, err)

	require.Len(t, got, len(summaries))
	for i := range summaries {
		assert.Equal(t, summaries[i].CourseName, got[i].CourseName)
		assert.Equal(t, summaries[i].N, got[i].N)
		assert.InDelta(t, summaries[i].MeanRank, got[i].MeanRank, 1e-12)
		assert.Equal(t, summaries[i].FinalRank, got[i].FinalRank)
	}
}

func TestWriteSummary_NaNMeanRoundTrips(t *testing.T) {
	summaries := []ranking.CourseSummary{
		{CourseName: "Responded", N: 3, MeanRank: 2.0, FinalRank: 1},
		{CourseName: "Ghost", N: 0, MeanRank: math.NaN(), FinalRank: 2},
	}

	path := filepath.Join(t.TempDir(), "course_rankings.csv")
	require.NoError(t, NewCSVWriter(nil).WriteSummary(path, summaries))

	got, err := ReadSummary(path)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, 0, got[1].N)
	assert.True(t, math.IsNaN(got[1].MeanRank))
	assert.Equal(t, 2, got[1].FinalRank)
}

func TestWriteSummary_HeaderAndOrder(t *testing.T) {
	summaries := []ranking.CourseSummary{
		{CourseName: "B", N: 2, MeanRank: 1.0, FinalRank: 1},
		{CourseName: "A", N: 2, MeanRank: 2.0, FinalRank: 2},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, NewCSVWriter(nil).WriteSummary(path, summaries))

	got, err := ReadSummary(path)
	require.NoError(t, err)
	assert.Equal(t, "B", got[0].CourseName)
	assert.Equal(t, "A", got[1].CourseName)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// BOM then header.
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	assert.Contains(t, string(data), "course_name,n,mean_rank,final_rank")
}

func TestWriteSummary_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.csv")
	require.NoError(t, NewCSVWriter(nil).WriteSummary(path, nil))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteSummary_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be forces os.Create to fail.
	path := filepath.Join(dir, "blocked.csv")
	require.NoError(t, os.MkdirAll(path, 0755))

	err := NewCSVWriter(nil).WriteSummary(path, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeOutputWrite))
}

func TestReadSummary_MissingFile(t *testing.T) {
	_, err := ReadSummary(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInputNotFound))
}

func TestReadSummary_MalformedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("course_name,n,mean_rank,final_rank\nAudit,notanumber,1.5,1\n"), 0644))

	_, err := ReadSummary(path)
	assert.Error(t, err)
}

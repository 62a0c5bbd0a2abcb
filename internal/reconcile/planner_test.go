package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/docs/v1"
)

func TestCheckIndexPlanAcceptsEmptyScript(t *testing.T) {
	assert.NoError(t, checkIndexPlan(&Script{}))
}

func TestCheckIndexPlanRejectsInvertedDeleteRange(t *testing.T) {
	script := &Script{Requests: []*docs.Request{{
		DeleteContentRange: &docs.DeleteContentRangeRequest{Range: &docs.Range{StartIndex: 10, EndIndex: 5}},
	}}}
	err := checkIndexPlan(script)
	assert.Error(t, err)
	_, ok := err.(*IndexError)
	assert.True(t, ok)
}

func TestCheckIndexPlanRejectsDescendingInserts(t *testing.T) {
	script := &Script{Requests: []*docs.Request{
		{InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: 10}, Text: "a"}},
		{InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: 5}, Text: "b"}},
	}}
	assert.Error(t, checkIndexPlan(script))
}

func TestCheckIndexPlanAcceptsAscendingInserts(t *testing.T) {
	script := &Script{Requests: []*docs.Request{
		{InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: 5}, Text: "a"}},
		{InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: 10}, Text: "b"}},
	}}
	assert.NoError(t, checkIndexPlan(script))
}

func TestCheckIndexPlanAcceptsDescendingDeletes(t *testing.T) {
	script := &Script{Requests: []*docs.Request{
		{DeleteContentRange: &docs.DeleteContentRangeRequest{Range: &docs.Range{StartIndex: 20, EndIndex: 30}}},
		{DeleteContentRange: &docs.DeleteContentRangeRequest{Range: &docs.Range{StartIndex: 5, EndIndex: 10}}},
	}}
	assert.NoError(t, checkIndexPlan(script))
}

func TestCheckIndexPlanAcceptsAscendingDeletesAcrossBlocks(t *testing.T) {
	script := &Script{Requests: []*docs.Request{
		{DeleteContentRange: &docs.DeleteContentRangeRequest{Range: &docs.Range{StartIndex: 1, EndIndex: 3}}},
		{DeleteContentRange: &docs.DeleteContentRangeRequest{Range: &docs.Range{StartIndex: 20, EndIndex: 22}}},
	}, blockEnds: []int{1, 2}}
	assert.NoError(t, checkIndexPlan(script), "a later block's delete-start legitimately exceeds an earlier block's")
}

func TestCheckIndexPlanStillRejectsDescendingWithinOneBlock(t *testing.T) {
	script := &Script{Requests: []*docs.Request{
		{DeleteContentRange: &docs.DeleteContentRangeRequest{Range: &docs.Range{StartIndex: 1, EndIndex: 3}}},
		{DeleteContentRange: &docs.DeleteContentRangeRequest{Range: &docs.Range{StartIndex: 20, EndIndex: 22}}},
	}, blockEnds: []int{2}}
	assert.Error(t, checkIndexPlan(script))
}

func TestCheckIndexPlanRejectsIndexOutsideSegmentBounds(t *testing.T) {
	script := &Script{
		Requests: []*docs.Request{
			{InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: 100}, Text: "a"}},
		},
		blockEnds:     []int{1},
		segmentBounds: []segmentBound{{segmentID: "", lo: 1, hi: 10}},
	}
	err := checkIndexPlan(script)
	assert.Error(t, err)
	_, ok := err.(*IndexError)
	assert.True(t, ok)
}

func TestCheckIndexPlanAcceptsIndexWithinSegmentBounds(t *testing.T) {
	script := &Script{
		Requests: []*docs.Request{
			{InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: 5}, Text: "a"}},
		},
		blockEnds:     []int{1},
		segmentBounds: []segmentBound{{segmentID: "", lo: 1, hi: 10}},
	}
	assert.NoError(t, checkIndexPlan(script))
}

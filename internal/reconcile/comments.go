package reconcile

import "github.com/extrasuite/docsrecon/internal/docmodel"

// DiffComments compares a tab's comments between base and desired and
// produces the subset of comment changes spec.md §4.B scopes in: new
// replies on an existing comment, and a comment transitioning to resolved.
// New top-level anchored comments are out of scope (comments are created
// through Drive, not the Docs content API this core reconciles against)
// and are silently ignored here — same as a comment present in desired but
// absent from base.
func DiffComments(base, desired *docmodel.Tab) *CommentScript {
	script := &CommentScript{}
	for id, desiredComment := range desired.Comments {
		baseComment, ok := base.Comments[id]
		if !ok {
			continue
		}
		if len(desiredComment.Replies) > len(baseComment.Replies) {
			for _, reply := range desiredComment.Replies[len(baseComment.Replies):] {
				script.Requests = append(script.Requests, CommentRequest{
					AddReply: &AddReplyRequest{CommentID: id, Content: reply.Content},
				})
			}
		}
		if desiredComment.Resolved && !baseComment.Resolved {
			script.Requests = append(script.Requests, CommentRequest{
				Resolve: &ResolveRequest{CommentID: id},
			})
		}
	}
	return script
}

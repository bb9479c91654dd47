package lsp

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"rustx/internal/comment"
)

// CommandToggleLineComment toggles line comments. Arguments: the document
// URI and the LSP range of the selection, both required. An empty range is
// the caret and toggles the line it sits on.
const CommandToggleLineComment = "rustx.toggleLineComment"

const toggleTitle = "Toggle line comment"

// TextDocumentCodeAction offers the toggle for the requested range.
func (h *RustxHandler) TextDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	edit, ok, err := h.toggleEdit(params.TextDocument.URI, params.Range)
	if err != nil || !ok {
		return nil, err
	}

	kind := protocol.CodeActionKindRefactorRewrite
	return []protocol.CodeAction{{
		Title: toggleTitle,
		Kind:  &kind,
		Edit:  edit,
	}}, nil
}

// WorkspaceExecuteCommand runs CommandToggleLineComment and asks the
// client to apply the result. The edit is sent after the command returns;
// a rejected edit is logged, not returned.
func (h *RustxHandler) WorkspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	if params.Command != CommandToggleLineComment {
		return nil, fmt.Errorf("unknown command %q", params.Command)
	}

	uri, rng, err := toggleArguments(params.Arguments)
	if err != nil {
		return nil, err
	}

	edit, ok, err := h.toggleEdit(uri, rng)
	if err != nil || !ok {
		return nil, err
	}

	// The connection reads the client's reply only once this request
	// handler has returned, so the call must not block it.
	go h.applyEdit(ctx, uri, edit)
	return nil, nil
}

func (h *RustxHandler) applyEdit(ctx *glsp.Context, uri protocol.DocumentUri, edit *protocol.WorkspaceEdit) {
	label := toggleTitle
	var resp protocol.ApplyWorkspaceEditResponse
	ctx.Call(protocol.ServerWorkspaceApplyEdit, &protocol.ApplyWorkspaceEditParams{
		Label: &label,
		Edit:  *edit,
	}, &resp)

	if !resp.Applied {
		reason := "no reason given"
		if resp.FailureReason != nil {
			reason = *resp.FailureReason
		}
		log.Warningf("client did not apply toggle for %s: %s", uri, reason)
	}
}

func toggleArguments(args []any) (protocol.DocumentUri, protocol.Range, error) {
	if len(args) < 2 {
		return "", protocol.Range{}, fmt.Errorf("%s: want arguments [uri, range], got %d", CommandToggleLineComment, len(args))
	}
	uri, ok := args[0].(string)
	if !ok || uri == "" {
		return "", protocol.Range{}, fmt.Errorf("%s: first argument must be a document URI", CommandToggleLineComment)
	}
	if args[1] == nil {
		return "", protocol.Range{}, fmt.Errorf("%s: missing range", CommandToggleLineComment)
	}

	var rng protocol.Range
	if err := decodeAny(args[1], &rng); err != nil {
		return "", protocol.Range{}, fmt.Errorf("%s: invalid range: %w", CommandToggleLineComment, err)
	}
	return uri, rng, nil
}

// toggleEdit computes the toggle for the selection rng as a workspace
// edit. ok is false when the document is not a dialect file or nothing
// would change.
func (h *RustxHandler) toggleEdit(uri protocol.DocumentUri, rng protocol.Range) (*protocol.WorkspaceEdit, bool, error) {
	doc, ok, err := h.document(uri)
	if err != nil || !ok {
		return nil, false, err
	}

	li := newLineIndex(doc.text)
	res := comment.Toggle(doc.text, comment.Request{
		Selection: &comment.Selection{
			Start: li.offset(rng.Start),
			End:   li.offset(rng.End),
		},
	})
	if len(res.Edits) == 0 {
		return nil, false, nil
	}

	edits := make([]protocol.TextEdit, 0, len(res.Edits))
	for _, e := range res.Edits {
		edits = append(edits, protocol.TextEdit{
			Range: protocol.Range{
				Start: li.position(e.Offset),
				End:   li.position(e.End()),
			},
			NewText: e.Text,
		})
	}

	return &protocol.WorkspaceEdit{
		Changes: map[protocol.DocumentUri][]protocol.TextEdit{uri: edits},
	}, true, nil
}

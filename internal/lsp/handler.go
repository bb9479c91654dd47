package lsp

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"rustx/internal/dialect"
)

// Semantic token types advertised in the legend, indexed by SemanticToken.TokenType
var SemanticTokenTypes = []string{
	"keyword",
	"comment",
}

// The tokenizer reports no modifiers.
var SemanticTokenModifiers = []string{}

const DefaultCacheTTL = 5 * time.Minute

var log = commonlog.GetLogger("rustx.lsp")

// RustxHandler implements the LSP server handlers for Rustx documents
type RustxHandler struct {
	mu       sync.RWMutex
	registry *dialect.Registry

	docs   *documentStore
	tokens *gocache.Cache
}

type cachedTokens struct {
	version protocol.Integer
	data    []uint32
}

// NewRustxHandler creates a handler for files matching registry. A nil
// registry uses the default dialect extensions; a non-positive ttl uses
// DefaultCacheTTL for cached semantic tokens.
func NewRustxHandler(registry *dialect.Registry, ttl time.Duration) *RustxHandler {
	if registry == nil {
		registry = dialect.NewRegistry()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RustxHandler{
		registry: registry,
		docs:     newDocumentStore(),
		tokens:   gocache.New(ttl, 2*ttl),
	}
}

// Protocol wires the handler's methods into a glsp protocol handler.
func (h *RustxHandler) Protocol() *protocol.Handler {
	return &protocol.Handler{
		Initialize:                      h.Initialize,
		Initialized:                     h.Initialized,
		Shutdown:                        h.Shutdown,
		SetTrace:                        h.SetTrace,
		TextDocumentDidOpen:             h.TextDocumentDidOpen,
		TextDocumentDidClose:            h.TextDocumentDidClose,
		TextDocumentDidChange:           h.TextDocumentDidChange,
		TextDocumentSemanticTokensFull:  h.TextDocumentSemanticTokensFull,
		TextDocumentSemanticTokensRange: h.TextDocumentSemanticTokensRange,
		TextDocumentCodeAction:          h.TextDocumentCodeAction,
		WorkspaceExecuteCommand:         h.WorkspaceExecuteCommand,
	}
}

// initializationOptions is the settings object clients may send with
// initialize.
type initializationOptions struct {
	Extensions []string `json:"extensions"`
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *RustxHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

	if params != nil && params.InitializationOptions != nil {
		var opts initializationOptions
		if err := decodeAny(params.InitializationOptions, &opts); err != nil {
			log.Warningf("ignoring initializationOptions: %s", err)
		} else if len(opts.Extensions) > 0 {
			h.setRegistry(dialect.NewRegistry(opts.Extensions...))
			log.Infof("dialect extensions: %s", strings.Join(h.getRegistry().Extensions(), ", "))
		}
	}

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindIncremental),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full:  ptrBool(true),
				Range: ptrBool(true),
			},
			CodeActionProvider: &protocol.CodeActionOptions{
				CodeActionKinds: []protocol.CodeActionKind{protocol.CodeActionKindRefactorRewrite},
			},
			ExecuteCommandProvider: &protocol.ExecuteCommandOptions{
				Commands: []string{CommandToggleLineComment},
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: "rustx",
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *RustxHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("Rustx LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *RustxHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("Rustx LSP Shutdown")
	h.tokens.Flush()
	return nil
}

func (h *RustxHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *RustxHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	if !h.getRegistry().MatchesURI(uri) {
		log.Debugf("not a dialect file, ignoring: %s", uri)
		return nil
	}

	log.Infof("Opened file: %s", uri)
	h.docs.open(uri, params.TextDocument.Text, params.TextDocument.Version)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *RustxHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("Closed file: %s", params.TextDocument.URI)

	h.docs.close(params.TextDocument.URI)
	h.tokens.Delete(string(params.TextDocument.URI))
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *RustxHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if !h.docs.change(uri, params.TextDocument.Version, params.ContentChanges) {
		log.Debugf("change for unknown document: %s", uri)
		return nil
	}

	log.Debugf("Changed file: %s (version %d)", uri, params.TextDocument.Version)
	h.tokens.Delete(string(uri))
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *RustxHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("TextDocumentSemanticTokensFull called for: %s", params.TextDocument.URI)

	doc, ok, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}

	if cached, found := h.tokens.Get(string(doc.uri)); found {
		if c, ok := cached.(cachedTokens); ok && c.version == doc.version {
			return &protocol.SemanticTokens{Data: c.data}, nil
		}
	}

	li := newLineIndex(doc.text)
	data := encodeSemanticTokens(collectSemanticTokens(li, 0, len(doc.text)))
	if doc.version >= 0 {
		h.tokens.SetDefault(string(doc.uri), cachedTokens{version: doc.version, data: data})
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// TextDocumentSemanticTokensRange handles semantic token requests for part of a document
func (h *RustxHandler) TextDocumentSemanticTokensRange(ctx *glsp.Context, params *protocol.SemanticTokensRangeParams) (any, error) {
	doc, ok, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}

	li := newLineIndex(doc.text)
	start, end := li.offset(params.Range.Start), li.offset(params.Range.End)
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(li, start, end)),
	}, nil
}

// document returns the open document for rawURI. Dialect files that are
// not open are read from disk with version -1 and never cached; other
// files report ok == false.
func (h *RustxHandler) document(rawURI protocol.DocumentUri) (document, bool, error) {
	if !h.getRegistry().MatchesURI(rawURI) {
		return document{}, false, nil
	}
	if doc, ok := h.docs.get(rawURI); ok {
		return doc, true, nil
	}

	path, err := uriToPath(rawURI)
	if err != nil {
		return document{}, false, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return document{}, false, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return document{uri: rawURI, text: string(content), version: -1}, true, nil
}

func (h *RustxHandler) getRegistry() *dialect.Registry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.registry
}

func (h *RustxHandler) setRegistry(r *dialect.Registry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.registry = r
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	if u.Scheme != "" && u.Scheme != "file" {
		return "", fmt.Errorf("unsupported URI scheme %q", u.Scheme)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

// decodeAny converts a loosely typed JSON value (as decoded by glsp) into out.
func decodeAny(v any, out any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

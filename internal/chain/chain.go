package chain

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/napuu/tweet-embed-bot/internal/config"
	"github.com/napuu/tweet-embed-bot/internal/handlers"
)

type HandlerChain struct {
	rootParser handlers.ContextHandler
}

func NewChainOfResponsibility(hosts config.ReplacementHosts) *HandlerChain {
	onTextHandler := &handlers.OnTextHandler{}
	onHostSelectHandler := &handlers.OnHostSelectHandler{Hosts: hosts}

	resolveOriginalHandler := &handlers.ResolveOriginalHandler{}
	urlRewriteHandler := &handlers.URLRewriteHandler{Hosts: hosts}
	constructTextResponseHandler := &handlers.ConstructTextResponseHandler{Hosts: hosts}

	textResponseHandler := &handlers.TextResponseHandler{}
	editReplyHandler := &handlers.EditReplyHandler{}

	endOfChainHandler := &handlers.EndOfChainHandler{}

	onTextHandler.SetNext(onHostSelectHandler)
	onHostSelectHandler.SetNext(resolveOriginalHandler)

	resolveOriginalHandler.SetNext(urlRewriteHandler)
	urlRewriteHandler.SetNext(constructTextResponseHandler)
	constructTextResponseHandler.SetNext(textResponseHandler)

	textResponseHandler.SetNext(editReplyHandler)
	editReplyHandler.SetNext(endOfChainHandler)

	return &HandlerChain{
		rootParser: onTextHandler,
	}
}

// Process runs one event through the chain. A panic in a handler is logged
// and swallowed so it can't take down the platform's event loop.
func (h *HandlerChain) Process(msg *handlers.Context) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error(fmt.Sprintf("Recovered from panic while handling event: %v", r),
				"service", msg.Service.String(),
				"stack", string(debug.Stack()))
		}
	}()

	h.rootParser.Execute(msg)
}

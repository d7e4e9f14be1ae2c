package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"structai-be/internal/constant"
	"structai-be/internal/entity"
	"structai-be/internal/repository/specification"
	"structai-be/internal/repository/unitofwork"
	"structai-be/pkg/assistant/prompt"
	"structai-be/pkg/corpus"
	"structai-be/pkg/llm"
)

// Config pins the resolver's lookup policy. The prefix lengths trade
// precision for recall and stay deliberately short.
type Config struct {
	CachePrefixLen  int
	CorpusPrefixLen int
	Temperature     float64
	MaxTokens       int
}

type Logger interface {
	Info(module, message string, details map[string]interface{})
	Warn(module, message string, details map[string]interface{})
	Error(module, message string, details map[string]interface{})
}

// Resolver answers a question by trying, in order: the history log, the
// unstructured corpus, then the remote model. Every path ends in a textual
// answer; nothing is surfaced as an error to the caller.
type Resolver struct {
	uowFactory  unitofwork.RepositoryFactory
	scanner     *corpus.Scanner
	llmProvider llm.LLMProvider
	cfg         Config
	logger      Logger
}

func New(
	uowFactory unitofwork.RepositoryFactory,
	scanner *corpus.Scanner,
	llmProvider llm.LLMProvider,
	cfg Config,
	logger Logger,
) *Resolver {
	if cfg.CachePrefixLen <= 0 {
		cfg.CachePrefixLen = 20
	}
	if cfg.CorpusPrefixLen <= 0 {
		cfg.CorpusPrefixLen = 30
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 512
	}
	return &Resolver{
		uowFactory:  uowFactory,
		scanner:     scanner,
		llmProvider: llmProvider,
		cfg:         cfg,
		logger:      logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, userId int64, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return constant.MsgResolverApology
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)

	// Step 1: history cache. The stored question must contain the new
	// question's prefix, case-sensitive, earliest row wins.
	if answer, ok := r.fromHistory(ctx, uow, question); ok {
		return answer
	}

	// Step 2: corpus substring scan.
	if answer, ok := r.fromCorpus(ctx, question); ok {
		return answer
	}

	// Step 3: remote model, persisted on success only.
	return r.fromModel(ctx, uow, userId, question)
}

func (r *Resolver) fromHistory(ctx context.Context, uow unitofwork.UnitOfWork, question string) (string, bool) {
	fragment := prefixRunes(question, r.cfg.CachePrefixLen)

	entry, err := uow.HistoryRepository().FindFirst(ctx, specification.QuestionContains{Fragment: fragment})
	if err != nil {
		r.logger.Warn("resolver", "history lookup failed", map[string]interface{}{"error": err.Error()})
		return "", false
	}
	if entry == nil {
		return "", false
	}

	r.logger.Info("resolver", "cache hit", map[string]interface{}{"history_id": entry.Id})
	return constant.MsgCachePrefix + entry.Answer, true
}

func (r *Resolver) fromCorpus(ctx context.Context, question string) (string, bool) {
	needle := prefixRunes(strings.ToLower(question), r.cfg.CorpusPrefixLen)

	match, err := r.scanner.FindFirst(ctx, needle)
	if err != nil {
		r.logger.Warn("resolver", "corpus scan failed", map[string]interface{}{"error": err.Error()})
		return "", false
	}
	if match == nil {
		return "", false
	}

	r.logger.Info("resolver", "corpus hit", map[string]interface{}{
		"document": match.DocName,
		"page":     match.PageNum,
	})
	return fmt.Sprintf("📖 Источник: %s (стр. %d)\n\n%s", match.DocName, match.PageNum, match.Excerpt), true
}

func (r *Resolver) fromModel(ctx context.Context, uow unitofwork.UnitOfWork, userId int64, question string) string {
	role := r.lookupRole(ctx, uow, userId)
	systemPrompt := prompt.ForRole(role)

	answer, err := r.llmProvider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: question},
		},
		llm.WithTemperature(r.cfg.Temperature),
		llm.WithMaxTokens(r.cfg.MaxTokens),
	)
	if err != nil {
		// The only request-fatal failure: degrade to an apology, do not
		// persist anything.
		r.logger.Error("resolver", "remote model failed", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return constant.MsgResolverApology
	}

	entry := &entity.HistoryEntry{
		UserId:   userId,
		Question: question,
		Answer:   answer,
		Date:     time.Now(),
	}
	if err := uow.HistoryRepository().Append(ctx, entry); err != nil {
		// The user still gets the answer; only the cache misses out.
		r.logger.Error("resolver", "history append failed", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}

	return answer
}

func (r *Resolver) lookupRole(ctx context.Context, uow unitofwork.UnitOfWork, userId int64) string {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUserId{UserId: userId})
	if err != nil {
		r.logger.Warn("resolver", "role lookup failed", map[string]interface{}{"error": err.Error()})
		return constant.RoleDefault
	}
	if user == nil || !constant.ValidRole(user.Role) {
		return constant.RoleDefault
	}
	return user.Role
}

func prefixRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

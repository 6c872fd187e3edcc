// internal/service/practice_service.go
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go_kana_practice/internal/config"
	"go_kana_practice/internal/engine"
	"go_kana_practice/internal/middleware"
	"go_kana_practice/internal/model"
	"go_kana_practice/internal/reading"
	"go_kana_practice/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeService は練習セッションのライフサイクルを管理します。
// セッションは永続化せず、メモリ上にのみ保持します。
// カーソル（入力位置）の管理はこのサービスの責務で、エンジンは
// 位置を引数として受け取る純粋関数として呼び出します。
type PracticeService interface {
	StartSession(ctx context.Context, req *model.StartPracticeRequest) (*model.StartPracticeResponse, error)
	Keystroke(ctx context.Context, sessionID uuid.UUID, req *model.KeystrokeRequest) (*model.KeystrokeResponse, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*model.SessionView, error)
	EndSession(ctx context.Context, sessionID uuid.UUID) error
}

type practiceService struct {
	db         *gorm.DB
	textRepo   repository.TextRepository
	table      *reading.Table          // テキスト登録時に読みを流し込む先
	lookup     engine.ReadingLookup    // エンジンが使う読み引き（table + フォールバック）
	variations *reading.VariationTable // 別読みレジストリ
	seq        engine.SequentialChecker
	cfg        *config.Config
	logger     *slog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*model.PracticeSession
}

func NewPracticeService(
	db *gorm.DB,
	textRepo repository.TextRepository,
	table *reading.Table,
	lookup engine.ReadingLookup,
	variations *reading.VariationTable,
	seq engine.SequentialChecker,
	cfg *config.Config,
	logger *slog.Logger,
) PracticeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &practiceService{
		db:         db,
		textRepo:   textRepo,
		table:      table,
		lookup:     lookup,
		variations: variations,
		seq:        seq,
		cfg:        cfg,
		logger:     logger,
		sessions:   make(map[uuid.UUID]*model.PracticeSession),
	}
}

func (s *practiceService) StartSession(ctx context.Context, req *model.StartPracticeRequest) (*model.StartPracticeResponse, error) {
	display, readingText, textID, err := s.resolveText(ctx, req)
	if err != nil {
		return nil, err
	}
	if len([]rune(display)) > s.cfg.App.MaxTextLength {
		return nil, model.NewAppError("TEXT_TOO_LONG", "表示文が長すぎます。", "display", model.ErrInvalidInput)
	}

	// カタログ由来の読みと別読みをレジストリに反映する。
	// 表示文全体が窓長以内なら熟語としても一致するようになる。
	s.table.Register(display, readingText)
	var alts []string
	if textID != nil {
		if text, err := s.textRepo.FindByID(ctx, s.db, *textID); err == nil {
			alts = text.AltReadingList()
		}
	}
	for _, alt := range alts {
		s.variations.RegisterVariant(display, alt)
		s.variations.RegisterAlternates(display, alt)
	}

	mapping := engine.AlignWithVariants(s.lookup, s.variations, display, readingText)

	// 読みデータが入力長と一致しないテキストは進行不能になるため弾く
	if len(mapping.Mappings) != mapping.TotalInputLength {
		s.logger.Warn("Reading data does not cover input text",
			slog.String("display", display),
			slog.Int("mapped", len(mapping.Mappings)),
			slog.Int("input_length", mapping.TotalInputLength),
		)
		return nil, model.NewAppError("UNMAPPABLE_TEXT", "読みデータが入力文を網羅していません。", "reading", model.ErrInvalidInput)
	}

	session := &model.PracticeSession{
		SessionID: uuid.New(),
		TextID:    textID,
		Mapping:   mapping,
		Position:  0,
		StartedAt: time.Now(),
	}

	s.mu.Lock()
	if len(s.sessions) >= s.cfg.App.SessionLimit {
		s.mu.Unlock()
		return nil, model.ErrSessionLimit
	}
	s.sessions[session.SessionID] = session
	s.mu.Unlock()

	token, err := s.signSessionToken(session.SessionID)
	if err != nil {
		s.logger.Error("Error signing session token", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	s.logger.Info("Practice session started",
		slog.String("session_id", session.SessionID.String()),
		slog.Int("input_length", mapping.TotalInputLength),
	)

	return &model.StartPracticeResponse{
		Session: s.viewOf(session),
		Token:   token,
	}, nil
}

func (s *practiceService) Keystroke(ctx context.Context, sessionID uuid.UUID, req *model.KeystrokeRequest) (*model.KeystrokeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}

	logger := middleware.GetLogger(ctx)
	result := engine.Validate(
		session.Mapping, s.variations, s.seq,
		req.Input, session.Position,
		engine.SlogObserver(logger),
	)

	// 完了したらカーソルをちょうど1つ進める（入力バッファのクリアは
	// クライアント側の責務）
	if result.IsComplete {
		session.Position++
	}

	return &model.KeystrokeResponse{
		Result:   result,
		Position: session.Position,
		Finished: session.Finished(),
		Segments: engine.Segment(session.Mapping, session.Position),
	}, nil
}

func (s *practiceService) GetSession(ctx context.Context, sessionID uuid.UUID) (*model.SessionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	view := s.viewOf(session)
	return &view, nil
}

func (s *practiceService) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return model.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	s.logger.Info("Practice session ended", slog.String("session_id", sessionID.String()))
	return nil
}

// resolveText はリクエストから表示文と読みを決めます。
// テキストIDがあればカタログから、無ければ直接指定から取ります。
func (s *practiceService) resolveText(ctx context.Context, req *model.StartPracticeRequest) (display, readingText string, textID *uuid.UUID, err error) {
	if req.TextID != nil {
		text, err := s.textRepo.FindByID(ctx, s.db, *req.TextID)
		if err != nil {
			return "", "", nil, err
		}
		return text.Display, text.Reading, req.TextID, nil
	}
	if req.Display == "" || req.Reading == "" {
		return "", "", nil, model.NewAppError("MISSING_TEXT", "text_id か display+reading のどちらかを指定してください。", "", model.ErrInvalidInput)
	}
	return req.Display, req.Reading, nil, nil
}

func (s *practiceService) viewOf(session *model.PracticeSession) model.SessionView {
	return model.SessionView{
		SessionID:        session.SessionID,
		Display:          session.Mapping.DisplayText,
		Position:         session.Position,
		TotalInputLength: session.Mapping.TotalInputLength,
		Finished:         session.Finished(),
		Segments:         engine.Segment(session.Mapping, session.Position),
	}
}

func (s *practiceService) signSessionToken(sessionID uuid.UUID) (string, error) {
	now := time.Now()
	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.Auth.TokenTTLMinutes) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JWTSecret))
}

package hub

import (
	"context"
	"errors"
	"sort"

	"quiz-service/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Yayınlanan yaşam döngüsü olay tipleri
const (
	EventGameStarted   = "game_started"
	EventGameCompleted = "game_completed"
)

// GameHub, oda koordinatörüdür: oyun ilerleme durum makinesi, soru
// zamanlayıcıları, cevap toplama ve puanlama buradadır. Her oda kendi
// kilidiyle izole edilir; iki odanın zamanlayıcıları birbirine değmez.
type GameHub struct {
	hub     *Hub
	storage Storage
	clock   Clock
	events  EventPublisher
}

func NewGameHub(hub *Hub, storage Storage, clock Clock, events EventPublisher) *GameHub {
	if events == nil {
		events = NopEventPublisher()
	}
	return &GameHub{
		hub:     hub,
		storage: storage,
		clock:   clock,
		events:  events,
	}
}

// HandleJoinGame, bir oyuncu bağlantısını oda koduyla oyuna bağlar.
func (g *GameHub) HandleJoinGame(client *domain.Client, env *Envelope) {
	content, err := decodeContent[JoinGameContent](env)
	if err != nil {
		g.hub.SendError(client, err.Error())
		return
	}

	ctx := context.Background()
	game, err := g.storage.GetGameByRoomCode(ctx, content.RoomCode)
	if err != nil {
		g.replyError(client, err)
		return
	}

	playerID, _ := uuid.Parse(content.PlayerID)
	player, err := g.storage.GetPlayerByID(ctx, playerID)
	if err != nil {
		g.replyError(client, err)
		return
	}
	if player.GameID != game.ID {
		g.hub.SendError(client, domain.ErrPlayerNotFound.Error())
		return
	}
	if player.IsHost {
		g.hub.SendError(client, "host must connect with host_game")
		return
	}
	// Oturum kimliği doğrulanmışsa oyuncu kimliğiyle eşleşmek zorundadır.
	if client.UserID != uuid.Nil && client.UserID != player.ID {
		g.hub.SendError(client, domain.ErrUnauthorized.Error())
		return
	}

	room := g.hub.Attach(client, game, playerID, false)

	players, err := g.storage.GetPlayersByGameID(ctx, game.ID)
	if err != nil {
		g.replyError(client, err)
		return
	}

	g.hub.Send(client, &Message{
		Type: MsgJoinedGame,
		Content: JoinedGameContent{
			Game:     game,
			Players:  players,
			PlayerID: player.ID.String(),
		},
	})

	// Odadaki diğer herkese güncel durumu duyur.
	g.hub.Broadcast(room, &Message{
		Type: MsgGameState,
		Content: GameStateContent{
			Game:    game,
			Players: players,
			Status:  game.Status,
		},
	})
}

// HandleHostGame, host bağlantısını odaya bağlar. Önceki host bağlantısı
// varsa yenisiyle değiştirilir (host yeniden bağlanması).
func (g *GameHub) HandleHostGame(client *domain.Client, env *Envelope) {
	content, err := decodeContent[HostGameContent](env)
	if err != nil {
		g.hub.SendError(client, err.Error())
		return
	}

	ctx := context.Background()
	gameID, _ := uuid.Parse(content.GameID)
	hostID, _ := uuid.Parse(content.HostID)

	game, err := g.storage.GetGameByID(ctx, gameID)
	if err != nil {
		g.replyError(client, err)
		return
	}
	if game.HostID != hostID {
		g.hub.SendError(client, domain.ErrUnauthorized.Error())
		return
	}

	g.hub.Attach(client, game, hostID, true)

	g.hub.Send(client, &Message{
		Type:    MsgHostConnected,
		Content: HostConnectedContent{Game: game},
	})
}

// HandleStartGame, lobby -> question(0) geçişidir. Sadece odanın host
// bağlantısı tetikleyebilir ve oyun lobby durumunda olmalıdır.
func (g *GameHub) HandleStartGame(client *domain.Client, env *Envelope) {
	content, err := decodeContent[StartGameContent](env)
	if err != nil {
		g.hub.SendError(client, err.Error())
		return
	}

	room := g.hub.RoomFor(content.RoomCode)
	if room == nil {
		g.hub.SendError(client, domain.ErrRoomNotFound.Error())
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.host != client {
		g.hub.SendError(client, domain.ErrNotHost.Error())
		return
	}

	ctx := context.Background()
	game, err := g.storage.GetGameByID(ctx, room.gameID)
	if err != nil {
		g.replyError(client, err)
		return
	}
	if game.Status != domain.GameStatusLobby {
		g.hub.SendError(client, domain.ErrGameNotInLobby.Error())
		return
	}

	questions, err := g.storage.GetQuestionsByGameID(ctx, room.gameID)
	if err != nil {
		g.replyError(client, err)
		return
	}
	if len(questions) == 0 {
		g.hub.SendError(client, "game has no questions")
		return
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].QuestionOrder < questions[j].QuestionOrder
	})
	room.questions = questions

	if err := g.storage.UpdateGameStatus(ctx, room.gameID, domain.GameStatusActive); err != nil {
		g.replyError(client, err)
		return
	}
	room.status = domain.GameStatusActive
	g.events.PublishGameEvent(ctx, EventGameStarted, game)

	g.startQuestionLocked(ctx, room, 0)
}

// HandleNextQuestion, grading(i) -> question(i+1) veya -> completed
// geçişidir. Sadece host tetikleyebilir; açık soru varken reddedilir.
func (g *GameHub) HandleNextQuestion(client *domain.Client, env *Envelope) {
	content, err := decodeContent[NextQuestionContent](env)
	if err != nil {
		g.hub.SendError(client, err.Error())
		return
	}

	room := g.hub.RoomFor(content.RoomCode)
	if room == nil {
		g.hub.SendError(client, domain.ErrRoomNotFound.Error())
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.host != client {
		g.hub.SendError(client, domain.ErrNotHost.Error())
		return
	}
	if room.status == domain.GameStatusCompleted {
		g.hub.SendError(client, domain.ErrGameCompleted.Error())
		return
	}
	if room.status != domain.GameStatusActive || len(room.questions) == 0 {
		g.hub.SendError(client, domain.ErrGameNotInLobby.Error())
		return
	}
	if room.openQuestionID != uuid.Nil {
		g.hub.SendError(client, "current question is still open")
		return
	}

	g.startQuestionLocked(context.Background(), room, room.currentIndex+1)
}

// HandleSubmitAnswer, açık soruya cevap kaydeder, puanlar ve gerekirse
// soruyu erken bitirir. Aynı oyuncudan ikinci gönderim hatayla reddedilir.
func (g *GameHub) HandleSubmitAnswer(client *domain.Client, env *Envelope) {
	content, err := decodeContent[SubmitAnswerContent](env)
	if err != nil {
		g.hub.SendError(client, err.Error())
		return
	}

	if _, _, registered := g.hub.ConnectionPlayer(client); !registered {
		g.hub.SendError(client, domain.ErrNotRegistered.Error())
		return
	}
	if client.IsHost {
		g.hub.SendError(client, "host cannot submit answers")
		return
	}

	room := g.hub.RoomFor(client.RoomCode)
	if room == nil {
		g.hub.SendError(client, domain.ErrRoomNotFound.Error())
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	questionID, _ := uuid.Parse(content.QuestionID)
	if !room.questionOpenLocked(questionID) {
		if room.openQuestionID == uuid.Nil {
			g.hub.SendError(client, domain.ErrNoOpenQuestion.Error())
		} else {
			g.hub.SendError(client, domain.ErrStaleSubmission.Error())
		}
		return
	}
	if _, dup := room.answered[client.PlayerID]; dup {
		g.hub.SendError(client, domain.ErrAlreadyAnswered.Error())
		return
	}

	question := &room.questions[room.currentIndex]

	elapsed := g.clock.Now().Sub(room.questionStartTime).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}
	budgetMs := room.timePerQuestion.Milliseconds()

	answerIndex := *content.AnswerIndex
	correct := isCorrectAnswer(question, answerIndex, content.AnswerIndices)
	points := Score(correct, elapsed, budgetMs, room.basePoints)

	ctx := context.Background()
	answer := &domain.PlayerAnswer{
		ID:                    uuid.New(),
		PlayerID:              client.PlayerID,
		QuestionID:            questionID,
		SelectedAnswerIndex:   answerIndex,
		SelectedAnswerIndices: content.AnswerIndices,
		AnsweredAt:            g.clock.Now(),
		TimeToAnswer:          elapsed,
		PointsEarned:          points,
	}
	if err := g.storage.CreatePlayerAnswer(ctx, answer); err != nil {
		if errors.Is(err, domain.ErrDuplicateAnswer) {
			g.hub.SendError(client, domain.ErrAlreadyAnswered.Error())
		} else {
			g.replyError(client, err)
		}
		return
	}

	player, err := g.storage.GetPlayerByID(ctx, client.PlayerID)
	if err != nil {
		g.replyError(client, err)
		return
	}
	if err := g.storage.UpdatePlayerScore(ctx, player.ID, player.Score+points); err != nil {
		g.replyError(client, err)
		return
	}

	room.answered[client.PlayerID] = struct{}{}

	// Doğruluk bilgisi sadece gönderen oyuncuya iletilir.
	g.hub.Send(client, &Message{
		Type: MsgAnswerSubmitted,
		Content: AnswerSubmittedContent{
			IsCorrect:    correct,
			PointsEarned: points,
			TimeToAnswer: elapsed,
		},
	})

	// Bağlı host dışı oyuncuların hepsi cevapladıysa süreyi bekletme.
	if len(room.answered) >= room.connectedPlayerCountLocked() {
		g.endQuestionLocked(ctx, room, questionID)
	}
}

// startQuestionLocked, verilen indeksteki soruyu açar. İndeks soru
// listesinin dışındaysa oyun tamamlanır. room.mu tutulurken çağrılır.
func (g *GameHub) startQuestionLocked(ctx context.Context, room *liveRoom, index int) {
	if err := g.storage.UpdateCurrentQuestion(ctx, room.gameID, index); err != nil {
		zap.L().Error("Failed to persist current question index", zap.Error(err))
	}

	if index >= len(room.questions) {
		g.completeGameLocked(ctx, room)
		return
	}

	room.clearQuestionLocked()

	question := &room.questions[index]
	room.currentIndex = index
	room.openQuestionID = question.ID
	room.questionStartTime = g.clock.Now()

	data := mustMarshal(&Message{
		Type: MsgQuestionStarted,
		Content: QuestionStartedContent{
			Question:       publicQuestion(question),
			TimeLimitMs:    room.timePerQuestion.Milliseconds(),
			QuestionIndex:  index,
			TotalQuestions: len(room.questions),
		},
	})
	g.hub.broadcastLocked(room, data)

	questionID := question.ID
	room.deadlineTimer = g.clock.AfterFunc(room.timePerQuestion, func() {
		g.endQuestion(room, questionID)
	})
}

// endQuestion, zamanlayıcı yolundan gelen soru bitirme çağrısıdır.
func (g *GameHub) endQuestion(room *liveRoom, questionID uuid.UUID) {
	room.mu.Lock()
	defer room.mu.Unlock()
	g.endQuestionLocked(context.Background(), room, questionID)
}

// endQuestionLocked, soruyu tam olarak bir kez kapatır. Zaman aşımı ve
// erken tamamlanma yolları yarışabilir; açık soru guard'ı kazananı seçer.
func (g *GameHub) endQuestionLocked(ctx context.Context, room *liveRoom, questionID uuid.UUID) {
	if !room.questionOpenLocked(questionID) {
		return
	}

	question := &room.questions[room.currentIndex]

	answers, err := g.storage.GetPlayerAnswersByQuestionID(ctx, questionID)
	if err != nil {
		zap.L().Error("Failed to load answers for breakdown", zap.Error(err))
		answers = nil
	}
	breakdown := make([]int, len(question.Answers))
	for _, a := range answers {
		if a.SelectedAnswerIndex >= 0 && a.SelectedAnswerIndex < len(breakdown) {
			breakdown[a.SelectedAnswerIndex]++
		}
	}

	players, err := g.storage.GetPlayersByGameID(ctx, room.gameID)
	if err != nil {
		zap.L().Error("Failed to load players for scoreboard", zap.Error(err))
	}
	// Skora göre azalan; eşit skorlar orijinal (katılım) sırasını korur.
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score > players[j].Score
	})

	data := mustMarshal(&Message{
		Type: MsgQuestionEnded,
		Content: QuestionEndedContent{
			Question:        revealedQuestion(question),
			AnswerBreakdown: breakdown,
			Players:         players,
		},
	})
	g.hub.broadcastLocked(room, data)

	room.clearQuestionLocked()
}

// completeGameLocked, oyunu terminal duruma taşır.
func (g *GameHub) completeGameLocked(ctx context.Context, room *liveRoom) {
	if err := g.storage.UpdateGameStatus(ctx, room.gameID, domain.GameStatusCompleted); err != nil {
		zap.L().Error("Failed to persist completed status", zap.Error(err))
	}
	room.status = domain.GameStatusCompleted
	room.clearQuestionLocked()

	g.hub.broadcastLocked(room, mustMarshal(&Message{Type: MsgGameCompleted}))

	if game, err := g.storage.GetGameByID(ctx, room.gameID); err == nil {
		g.events.PublishGameEvent(ctx, EventGameCompleted, game)
	}
}

// replyError, beklenen alan hatalarını olduğu gibi, kalanını genel bir
// mesajla istemciye iletir. Hiçbir hata süreci öldürmez.
func (g *GameHub) replyError(client *domain.Client, err error) {
	switch {
	case errors.Is(err, domain.ErrGameNotFound),
		errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrQuestionNotFound),
		errors.Is(err, domain.ErrRoomNotFound):
		g.hub.SendError(client, err.Error())
	default:
		zap.L().Error("Unexpected storage error", zap.Error(err))
		g.hub.SendError(client, "internal error")
	}
}

// internal/backend/dto.go
package backend

import "encoding/json"

// DTOs exchanged with the bot backend. The console never stores these:
// every page renders the last fetched snapshot and nothing else.
//
// Money fields arrive either as numbers or as strings depending on the
// backend serializer, hence json.Number.

type Team struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	TelegramChatID        *string `json:"telegramChatId"`
	ChannelTelegramChatID *string `json:"channelTelegramChatId"`
}

type Me struct {
	Teams       []Team `json:"teams"`
	CurrentTeam *Team  `json:"currentTeam"`
}

type Player struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	Number *int        `json:"number"`
	Status string      `json:"status"`
	Debt   json.Number `json:"debt"`
}

type Match struct {
	ID            int64   `json:"id"`
	Opponent      string  `json:"opponent"`
	Date          *string `json:"date"`
	OurScore      *int    `json:"ourScore"`
	OpponentScore *int    `json:"opponentScore"`
	Location      *string `json:"location"`
	Status        string  `json:"status"`
}

// Match statuses as the backend reports them.
const (
	MatchScheduled = "SCHEDULED"
	MatchPlayed    = "PLAYED"
	MatchCancelled = "CANCELLED"
)

type MatchStatRow struct {
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	Number     *int   `json:"number"`
	Minutes    *int   `json:"minutes"`
	Points     int    `json:"points"`
	Rebounds   int    `json:"rebounds"`
	Assists    int    `json:"assists"`
	Fouls      int    `json:"fouls"`
	PlusMinus  *int   `json:"plusMinus"`
	MVP        bool   `json:"mvp"`
}

type MatchStats struct {
	Stats         []MatchStatRow `json:"stats"`
	MVPPlayerName *string        `json:"mvpPlayerName"`
}

// MatchStatsSave is the batch payload for POST /matches/{id}/stats.
// The grid is edited in the modal and submitted atomically.
type MatchStatsSave struct {
	Stats []MatchStatRow `json:"stats"`
}

type MatchAttendanceRow struct {
	TelegramUserID   string `json:"telegramUserId"`
	DisplayName      string `json:"displayName"`
	TelegramUsername string `json:"telegramUsername"`
	Status           string `json:"status,omitempty"`
}

type MatchAttendance struct {
	Responded  []MatchAttendanceRow `json:"responded"`
	NoResponse []MatchAttendanceRow `json:"noResponse"`
}

// AttendanceUpdate marks one member as not coming. The UI exposes no
// other transition.
type AttendanceUpdate struct {
	TelegramUserID string `json:"telegramUserId"`
	Status         string `json:"status"`
}

type MemberAttendance struct {
	MatchID  int64   `json:"matchId"`
	Opponent string  `json:"opponent"`
	Date     *string `json:"date"`
	Status   *string `json:"status"`
}

type Member struct {
	TelegramUserID   string      `json:"telegramUserId"`
	TelegramUsername string      `json:"telegramUsername"`
	DisplayName      string      `json:"displayName"`
	Role             string      `json:"role"`
	Number           *int        `json:"number"`
	Status           string      `json:"status"`
	Debt             json.Number `json:"debt"`
	IsActive         bool        `json:"isActive"`
}

type Dashboard struct {
	Team        Team        `json:"team"`
	PlayerCount int         `json:"playerCount"`
	DebtorCount int         `json:"debtorCount"`
	TotalDebt   json.Number `json:"totalDebt"`
	NextMatch   *Match      `json:"nextMatch"`
}

type DebtList struct {
	Debtors []Player `json:"debtors"`
}

type FinanceEntry struct {
	ID          int64       `json:"id"`
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount"`
	Description *string     `json:"description"`
	EntryDate   string      `json:"entryDate"`
}

type FinanceReport struct {
	From         string         `json:"from"`
	To           string         `json:"to"`
	TotalIncome  json.Number    `json:"totalIncome"`
	TotalExpense json.Number    `json:"totalExpense"`
	Balance      json.Number    `json:"balance"`
	Entries      []FinanceEntry `json:"entries"`
}

type Event struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	EventType   string  `json:"eventType"`
	EventDate   string  `json:"eventDate"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

type Settings struct {
	ChannelID   string `json:"channelId"`
	GroupChatID string `json:"groupChatId,omitempty"`
}

type SystemSettings struct {
	AdminTelegramID       string `json:"adminTelegramId"`
	AdminTelegramUsername string `json:"adminTelegramUsername"`
}

type Invitation struct {
	Code      string `json:"code"`
	Link      string `json:"link"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expiresAt"`
}

type InvitationCreate struct {
	Role          string `json:"role,omitempty"`
	ExpiresInDays int    `json:"expiresInDays,omitempty"`
}

type InvitationCreated struct {
	Success    bool        `json:"success"`
	Invitation *Invitation `json:"invitation"`
	Error      string      `json:"error"`
}

type LeagueTableRow struct {
	ID         int64  `json:"id"`
	Position   int    `json:"position"`
	TeamName   string `json:"teamName"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	PointsDiff int    `json:"pointsDiff"`
}

type LeagueTableRowCreate struct {
	Position   int    `json:"position,omitempty"`
	TeamName   string `json:"teamName"`
	Wins       int    `json:"wins,omitempty"`
	Losses     int    `json:"losses,omitempty"`
	PointsDiff int    `json:"pointsDiff,omitempty"`
}

type IntegrationTypeStat struct {
	EventType string `json:"eventType"`
	Label     string `json:"label"`
	Success   int    `json:"success"`
	Failed    int    `json:"failed"`
}

type IntegrationStats struct {
	From    string                `json:"from"`
	To      string                `json:"to"`
	Total   int                   `json:"total"`
	Success int                   `json:"success"`
	Failed  int                   `json:"failed"`
	ByType  []IntegrationTypeStat `json:"byType"`
}

type IntegrationEvent struct {
	ID           int64   `json:"id"`
	EventType    string  `json:"eventType"`
	TargetChatID *string `json:"targetChatId"`
	Success      bool    `json:"success"`
	ErrorMessage *string `json:"errorMessage"`
	TeamID       *int64  `json:"teamId"`
	MatchID      *int64  `json:"matchId"`
	CreatedAt    *string `json:"createdAt"`
}

// ActionResult is the mutation envelope. On failure Data often carries
// the error detail instead of the error field; see Detail.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

type LoginResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type TeamSelectResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

package models

import "time"

// GameHistory is the durable record of one finished game. A row is only ever
// written when a session reaches a terminal state (won, lost or forfeited);
// in-progress sessions never appear here.
type GameHistory struct {
    ID           string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    StudentID    string    `gorm:"type:uuid;not null;column:student_id" json:"student_id"`
    Student      *User     `gorm:"foreignKey:StudentID" json:"student,omitempty"`
    WordID       string    `gorm:"type:uuid;not null;column:word_id" json:"word_id"`
    Word         *Word     `gorm:"foreignKey:WordID" json:"word,omitempty"`
    IsSuccess    bool      `gorm:"not null" json:"is_success"`
    Attempts     int       `gorm:"type:integer;not null" json:"attempts"`
    WrongLetters string    `gorm:"type:varchar(100)" json:"wrong_letters"`
    PlayedAt     time.Time `gorm:"autoCreateTime" json:"played_at"`
}

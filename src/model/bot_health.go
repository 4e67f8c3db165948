package model

import (
	"github.com/rafacas/sysstats"
)

const DbStatusOk = "ok"
const DbStatusFail = "fail"
const RedisStatusOk = "ok"
const RedisStatusFail = "fail"
const GameStatusOk = "ok"
const GameStatusDisconnected = "disconnected"

type BotHealth struct {
	Bot           Bot               `json:"bot"`
	DbStatus      string            `json:"dbStatus"`
	RedisStatus   string            `json:"redisStatus"`
	GameStatus    string            `json:"gameStatus"`
	LearnedShapes int               `json:"learnedShapes"`
	Cores         int               `json:"cores"`
	Memory        sysstats.MemStats `json:"memory"`
	LoadAvg       sysstats.LoadAvg  `json:"loadAvg"`
	CheckedAt     string            `json:"checkedAt"`
}

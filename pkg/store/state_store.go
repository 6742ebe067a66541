package store

type StateStore interface {
	Name() string
}

type TABLE_TYPE uint8

const (
	SKIPMAP TABLE_TYPE = 0
	BTREE   TABLE_TYPE = 1
)

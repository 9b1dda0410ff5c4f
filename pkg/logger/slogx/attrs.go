package slogx

import "log/slog"

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("err", "<nil>")
	}

	return slog.String("err", err.Error())
}

func EntityID(id int64) slog.Attr {
	return slog.Int64("entity_id", id)
}

func EntityName(name string) slog.Attr {
	return slog.String("entity", name)
}

func Op(op string) slog.Attr {
	return slog.String("op", op)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/evgeniy-krivenko/bookshelf/internal/ctxtr"
	v1 "github.com/evgeniy-krivenko/bookshelf/pkg/api/library/v1"
	"github.com/evgeniy-krivenko/bookshelf/pkg/logger/slogx"
)

const defaultAddr = "127.0.0.1:50051"

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*60)
	defer cancel()

	if err := slogx.InitGlobal(os.Stdout, "info", true, ctxtr.LogHandler); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	addr := os.Getenv("LIBRARY_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(ctxtr.OutgoingRequestID),
	)
	if err != nil {
		return fmt.Errorf("new client conn: %v", err)
	}
	defer conn.Close()

	c := v1.NewLibraryAPIClient(conn)
	ctx = ctxtr.WithRequestID(ctx, uuid.NewString())

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()

	go func() {
		if err := watchChanges(watchCtx, c); err != nil {
			slogx.Error(ctx, "watch changes", slogx.Err(err))
		}
	}()

	return scenario(ctx, c)
}

// scenario walks one book through its whole lifecycle.
func scenario(ctx context.Context, c v1.LibraryAPIClient) error {
	shelf, err := c.CreateShelf(ctx, sampleShelf())
	if err != nil {
		return report(ctx, "create shelf", err)
	}
	slogx.Info(ctx, "shelf created", slogx.EntityID(shelf.GetShelf().GetId()))

	var bookID int64
	for _, in := range sampleBooks(shelf.GetShelf().GetId()) {
		resp, err := c.CreateBook(ctx, in)
		if err != nil {
			return report(ctx, "create book", err)
		}
		slogx.Info(ctx, "book created", slogx.EntityID(resp.GetBook().GetId()), slog.String("title", resp.GetBook().GetTitle()))

		if bookID == 0 {
			bookID = resp.GetBook().GetId()
		}
	}

	search := "orwell"
	found, err := c.GetBooks(ctx, &v1.GetBooksRequest{Search: proto.String(search)})
	if err != nil {
		return report(ctx, "search books", err)
	}
	slogx.Info(ctx, "books found", slog.String("search", search), slog.Int("count", len(found.GetBooks())))

	updated, err := c.UpdateBook(ctx, &v1.UpdateBookRequest{
		Id:     bookID,
		Status: v1.BookStatus_BOOK_STATUS_READING.Enum(),
	})
	if err != nil {
		return report(ctx, "update book", err)
	}
	slogx.Info(ctx, "book updated", slogx.EntityID(bookID), slog.String("status", updated.GetBook().GetStatus().String()))

	for range 2 {
		resp, err := c.DeleteBook(ctx, &v1.DeleteRequest{Id: bookID})
		if err != nil {
			return report(ctx, "delete book", err)
		}
		slogx.Info(ctx, "delete book", slogx.EntityID(bookID), slog.Bool("success", resp.GetSuccess()))
	}

	if _, err := c.DeleteShelf(ctx, &v1.DeleteRequest{Id: shelf.GetShelf().GetId()}); err != nil {
		// the second sample book still sits on the shelf
		slogx.Info(ctx, "shelf kept", slog.String("reason", status.Convert(err).Message()))
	}

	return nil
}

func watchChanges(ctx context.Context, c v1.LibraryAPIClient) error {
	stream, err := c.WatchChanges(ctx, &v1.WatchChangesRequest{})
	if err != nil {
		return fmt.Errorf("watch changes: %v", err)
	}

	for {
		ev, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("watch changes recv: %v", err)
		}

		slogx.Info(ctx, "change",
			slog.String("entity", ev.GetEntity()),
			slog.String("action", ev.GetAction()),
			slogx.EntityID(ev.GetId()),
		)
	}
}

func report(ctx context.Context, op string, err error) error {
	for _, v := range v1.FieldViolations(err) {
		slogx.Error(ctx, "field violation", slog.String("field", v.Field), slog.String("reason", v.Reason))
	}

	return fmt.Errorf("%s: %v", op, err)
}

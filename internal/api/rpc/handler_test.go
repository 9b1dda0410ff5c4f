package rpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evgeniy-krivenko/bookshelf/internal/api/rpc"
	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/internal/testutil/app"
)

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *rpc.Error      `json:"error"`
}

var _ = Describe("Handler", func() {
	var (
		a       *app.App
		handler http.Handler
		healthy error
	)

	BeforeEach(func() {
		a = app.New()
		healthy = nil
		handler = rpc.New(a.Books, a.Shelves, func(context.Context) error { return healthy })
	})

	call := func(method, target, body string) (int, response) {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, target, nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		var resp response
		if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		}

		return rec.Code, resp
	}

	post := func(procedure, body string) (int, response) {
		return call(http.MethodPost, "/rpc/"+procedure, body)
	}

	It("should run the book scenario", func() {
		code, resp := post("createBook", `{"title":"1984","author":"George Orwell","genre":"Dystopian","status":"to-read"}`)
		Expect(code).To(Equal(http.StatusOK))

		var created entity.Book
		Expect(json.Unmarshal(resp.Result, &created)).To(Succeed())
		Expect(created.ID).To(BeNumerically(">", 0))
		Expect(created.Status).To(Equal(entity.BookStatusToRead))
		Expect(created.CreatedAt).To(Equal(created.UpdatedAt))

		var raw map[string]any
		Expect(json.Unmarshal(resp.Result, &raw)).To(Succeed())
		_, err := time.Parse(time.RFC3339, raw["created_at"].(string))
		Expect(err).NotTo(HaveOccurred())

		code, resp = post("updateBook", `{"id":`+jsonInt(created.ID)+`,"status":"reading"}`)
		Expect(code).To(Equal(http.StatusOK))

		var updated entity.Book
		Expect(json.Unmarshal(resp.Result, &updated)).To(Succeed())
		Expect(updated.Status).To(Equal(entity.BookStatusReading))
		Expect(updated.Title).To(Equal("1984"))
		Expect(updated.Author).To(Equal("George Orwell"))
		Expect(updated.Genre).To(Equal("Dystopian"))
		Expect(updated.UpdatedAt.After(created.UpdatedAt)).To(BeTrue())

		code, resp = post("deleteBook", `{"id":`+jsonInt(created.ID)+`}`)
		Expect(code).To(Equal(http.StatusOK))
		Expect(resp.Result).To(MatchJSON(`{"success":true}`))

		code, resp = post("deleteBook", `{"id":`+jsonInt(created.ID)+`}`)
		Expect(code).To(Equal(http.StatusOK))
		Expect(resp.Result).To(MatchJSON(`{"success":false}`))
	})

	It("should report validation failures with fields", func() {
		code, resp := post("createBook", `{"title":"","author":"a","genre":"g","status":"to-read","rating":11}`)

		Expect(code).To(Equal(http.StatusBadRequest))
		Expect(resp.Error.Code).To(Equal(rpc.CodeValidationFailed))
		Expect(resp.Error.Fields).To(HaveLen(2))
		Expect(a.BookStore.Len()).To(BeZero())
	})

	It("should reject unknown fields and trailing data", func() {
		code, resp := post("createShelf", `{"name":"x","colour":"red"}`)
		Expect(code).To(Equal(http.StatusBadRequest))
		Expect(resp.Error.Code).To(Equal(rpc.CodeBadRequest))

		code, resp = post("createShelf", `{"name":"x"} {"name":"y"}`)
		Expect(code).To(Equal(http.StatusBadRequest))
		Expect(resp.Error.Code).To(Equal(rpc.CodeBadRequest))
		Expect(a.ShelfStore.Len()).To(BeZero())
	})

	It("should answer queries over GET with the input parameter", func() {
		_, _ = post("createShelf", `{"name":"Classics","description":"Old and good"}`)
		_, _ = post("createShelf", `{"name":"Modern"}`)

		code, resp := call(http.MethodGet, "/rpc/getShelves?input="+url.QueryEscape(`{"search":"GOOD"}`), "")
		Expect(code).To(Equal(http.StatusOK))

		var shelves []entity.Shelf
		Expect(json.Unmarshal(resp.Result, &shelves)).To(Succeed())
		Expect(shelves).To(HaveLen(1))
		Expect(shelves[0].Name).To(Equal("Classics"))

		code, resp = call(http.MethodGet, "/rpc/getShelves", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(json.Unmarshal(resp.Result, &shelves)).To(Succeed())
		Expect(shelves).To(HaveLen(2))
	})

	It("should return an empty list instead of null", func() {
		code, resp := post("getBooks", `{"search":"nothing"}`)

		Expect(code).To(Equal(http.StatusOK))
		Expect(resp.Result).To(MatchJSON(`[]`))
	})

	It("should map a missing entity to 404", func() {
		code, resp := call(http.MethodGet, "/rpc/getBook?input="+url.QueryEscape(`{"id":5}`), "")

		Expect(code).To(Equal(http.StatusNotFound))
		Expect(resp.Error.Code).To(Equal(rpc.CodeNotFound))
	})

	It("should refuse mutations over GET", func() {
		code, _ := call(http.MethodGet, "/rpc/createBook", "")

		Expect(code).To(Equal(http.StatusMethodNotAllowed))
	})

	It("should clear nullable fields with null", func() {
		_, resp := post("createShelf", `{"name":"Box","capacity":5}`)

		var shelf entity.Shelf
		Expect(json.Unmarshal(resp.Result, &shelf)).To(Succeed())

		code, resp := post("updateShelf", `{"id":`+jsonInt(shelf.ID)+`,"capacity":null}`)
		Expect(code).To(Equal(http.StatusOK))
		Expect(json.Unmarshal(resp.Result, &shelf)).To(Succeed())
		Expect(shelf.Capacity).To(BeNil())
		Expect(shelf.Name).To(Equal("Box"))
	})

	It("should report health", func() {
		code, _ := call(http.MethodGet, "/healthz", "")
		Expect(code).To(Equal(http.StatusOK))

		healthy = errors.New("db down")
		code, _ = call(http.MethodGet, "/healthz", "")
		Expect(code).To(Equal(http.StatusServiceUnavailable))
	})
})

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

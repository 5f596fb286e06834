package lessons_test

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/lessonshop/internal/app/features/lessons"
	lessonstore "github.com/dalemusser/lessonshop/internal/app/store/lessons"
	"github.com/dalemusser/lessonshop/internal/app/store/storemock"
	"github.com/dalemusser/lessonshop/internal/testutil"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type HandlerSuite struct {
	suite.Suite
	store *storemock.MockLessonStore
	h     *lessons.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.store = storemock.NewMockLessonStore(ctrl)
	s.h = lessons.NewHandler(s.store, zap.NewNop())
}

func (s *HandlerSuite) errorBody(rec *testutil.ResponseRecorder) string {
	var body struct {
		Error string `json:"error"`
	}
	rec.DecodeJSON(s.T(), &body)
	return body.Error
}

func (s *HandlerSuite) TestList() {
	mathID, musicID := primitive.NewObjectID(), primitive.NewObjectID()
	s.store.EXPECT().List(gomock.Any()).Return([]bson.M{
		{"_id": mathID, "topic": "Math", "location": "Hendon", "price": int32(100), "space": int32(5)},
		{"_id": musicID, "topic": "Music", "location": "London", "price": "3", "space": 2.5, "icon": "note", "tags": bson.M{"level": "beginner"}},
	}, nil)

	rec := testutil.NewRecorder()
	s.h.List(rec, testutil.NewRequest(http.MethodGet, "/api/lessons"))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
	s.JSONEq(`[
		{"_id":"`+mathID.Hex()+`","topic":"Math","location":"Hendon","price":100,"space":5},
		{"_id":"`+musicID.Hex()+`","topic":"Music","location":"London","price":"3","space":2.5,"icon":"note","tags":{"level":"beginner"}}
	]`, rec.Body.String())
}

func (s *HandlerSuite) TestList_Empty() {
	s.store.EXPECT().List(gomock.Any()).Return([]bson.M{}, nil)

	rec := testutil.NewRecorder()
	s.h.List(rec, testutil.NewRequest(http.MethodGet, "/api/lessons"))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *HandlerSuite) TestList_StoreError() {
	s.store.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	rec := testutil.NewRecorder()
	s.h.List(rec, testutil.NewRequest(http.MethodGet, "/api/lessons"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("connection refused", s.errorBody(rec))
}

func (s *HandlerSuite) TestSearch_BlankTermNeverReachesStore() {
	for _, target := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20%20"} {
		rec := testutil.NewRecorder()
		s.h.Search(rec, testutil.NewRequest(http.MethodGet, target))

		s.Equal(http.StatusBadRequest, rec.Code, target)
		s.Equal("q is required", s.errorBody(rec), target)
	}
}

func (s *HandlerSuite) TestSearch_TextTerm() {
	re := primitive.Regex{Pattern: `C\+\+`, Options: "i"}
	want := bson.M{"$or": bson.A{
		bson.M{"topic": re},
		bson.M{"location": re},
	}}
	s.store.EXPECT().Find(gomock.Any(), want).Return([]bson.M{{"topic": "Intro to C++"}}, nil)

	rec := testutil.NewRecorder()
	s.h.Search(rec, testutil.NewRequest(http.MethodGet, "/api/search?q=%20C%2B%2B%20"))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"topic":"Intro to C++"}]`, rec.Body.String())
}

func (s *HandlerSuite) TestSearch_NumericTerm() {
	re := primitive.Regex{Pattern: "3", Options: "i"}
	want := bson.M{"$or": bson.A{
		bson.M{"topic": re},
		bson.M{"location": re},
		bson.M{"price": float64(3)},
		bson.M{"space": float64(3)},
	}}
	s.store.EXPECT().Find(gomock.Any(), want).Return([]bson.M{}, nil)

	rec := testutil.NewRecorder()
	s.h.Search(rec, testutil.NewRequest(http.MethodGet, "/api/search?q=3"))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *HandlerSuite) TestSearch_StoreError() {
	s.store.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	rec := testutil.NewRecorder()
	s.h.Search(rec, testutil.NewRequest(http.MethodGet, "/api/search?q=math"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("boom", s.errorBody(rec))
}

func (s *HandlerSuite) update(id, body string) *testutil.ResponseRecorder {
	req := testutil.NewJSONRequest(http.MethodPut, "/api/lessons/"+id, body)
	req = testutil.WithChiURLParam(req, "id", id)
	rec := testutil.NewRecorder()
	s.h.Update(rec, req)
	return rec
}

func (s *HandlerSuite) TestUpdate_InvalidID() {
	for _, id := range []string{"abc", "zzzzzzzzzzzzzzzzzzzzzzzz", "507f1f77bcf86cd79943901"} {
		rec := s.update(id, `{"space":4}`)
		s.Equal(http.StatusBadRequest, rec.Code, id)
		s.Equal("Invalid lesson id", s.errorBody(rec), id)
	}
}

func (s *HandlerSuite) TestUpdate_NoValidFields() {
	id := primitive.NewObjectID().Hex()
	for _, body := range []string{`{}`, ``, `{"foo":1,"_id":"x","image":"a.png"}`} {
		rec := s.update(id, body)
		s.Equal(http.StatusBadRequest, rec.Code, body)
		s.Equal("No valid fields to update", s.errorBody(rec), body)
	}
}

func (s *HandlerSuite) TestUpdate_ValuesPassedThrough() {
	id := primitive.NewObjectID()
	s.store.EXPECT().
		Patch(gomock.Any(), id, bson.M{"price": "free", "space": int32(-1), "desc": "Maths & Physics <for ages 5-7>"}).
		Return(lessonstore.PatchResult{Matched: 1, Modified: 1}, nil)

	rec := s.update(id.Hex(), `{"price":"free","space":-1,"desc":"Maths & Physics <for ages 5-7>"}`)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerSuite) TestUpdate_MalformedJSON() {
	rec := s.update(primitive.NewObjectID().Hex(), `{"space":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestUpdate_FiltersUnknownFields() {
	id := primitive.NewObjectID()
	s.store.EXPECT().
		Patch(gomock.Any(), id, bson.M{"space": int32(4)}).
		Return(lessonstore.PatchResult{Matched: 1, Modified: 1}, nil)

	rec := s.update(id.Hex(), `{"space":4,"foo":"bar"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok":true,"matchedCount":1,"modifiedCount":1}`, rec.Body.String())
}

func (s *HandlerSuite) TestUpdate_NoOp() {
	id := primitive.NewObjectID()
	s.store.EXPECT().
		Patch(gomock.Any(), id, gomock.Any()).
		Return(lessonstore.PatchResult{Matched: 1, Modified: 0}, nil)

	rec := s.update(id.Hex(), `{"topic":"Math"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok":true,"matchedCount":1,"modifiedCount":0}`, rec.Body.String())
}

func (s *HandlerSuite) TestUpdate_NotFound() {
	id := primitive.NewObjectID()
	s.store.EXPECT().
		Patch(gomock.Any(), id, gomock.Any()).
		Return(lessonstore.PatchResult{}, nil)

	rec := s.update(id.Hex(), `{"space":4}`)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Lesson not found", s.errorBody(rec))
}

func (s *HandlerSuite) TestUpdate_StoreError() {
	s.store.EXPECT().
		Patch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(lessonstore.PatchResult{}, errors.New("write conflict"))

	rec := s.update(primitive.NewObjectID().Hex(), `{"space":4}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("write conflict", s.errorBody(rec))
}

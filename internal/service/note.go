package service

import (
	"context"

	"github.com/sirupsen/logrus"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/model"
	"github.com/gutenlab/datalake/internal/store"
)

// NewNoteService creates a new NoteService.
func NewNoteService(store store.Store) *NoteService {
	return &NoteService{
		store: store,
	}
}

// NoteService manages the free-text notes attached to pages.
type NoteService struct {
	store store.Store
}

// List returns the notes of the page addressed by the name triple.
func (n *NoteService) List(ctx context.Context, siteName, sectionName, pageName string) ([]*v1.Note, error) {
	notes, err := n.store.ListNotesByPage(ctx, siteName, sectionName, pageName)
	if err != nil {
		return nil, err
	}

	res := make([]*v1.Note, 0, len(notes))
	for _, note := range notes {
		res = append(res, noteResponse(note))
	}

	return res, nil
}

// Create attaches a note to a page after walking the resolution chain.
func (n *NoteService) Create(ctx context.Context, request *v1.CreateNoteRequest) (*v1.Note, error) {
	page, err := resolvePage(ctx, n.store, request.SiteName, request.SectionName, request.PageName)
	if err != nil {
		return nil, err
	}

	note := &model.Note{
		PageID: page.ID,
		Note:   request.Note,
	}

	if err := n.store.CreateNote(ctx, note); err != nil {
		logrus.Errorf("error creating note for page %s: %v", request.PageName, err)
		return nil, err
	}

	return noteResponse(note), nil
}

// Delete removes the note with the given id.
func (n *NoteService) Delete(ctx context.Context, id uint) error {
	if _, err := n.store.GetNoteByID(ctx, id); err != nil {
		return asNotFound(err, ErrNoteNotFound)
	}

	return n.store.DeleteNote(ctx, id)
}

func noteResponse(note *model.Note) *v1.Note {
	return &v1.Note{
		ID:     note.ID,
		PageID: note.PageID,
		Note:   note.Note,
	}
}

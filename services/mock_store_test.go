package services

import (
	"context"

	"github.com/charlietlyons/VitaTrack-API/store"
)

// mockStore is a function-field mock of store.Store. Unset fields fall
// back to not-found for reads and success for writes.
type mockStore struct {
	GetOneByIDFunc     func(collection, id string, dest any) error
	GetOneByQueryFunc  func(collection string, query store.Query, dest any) error
	GetManyByQueryFunc func(collection string, queries []store.Query, dest any) error
	InsertFunc         func(collection string, doc any) error
	PatchFunc          func(collection, id string, doc any) error
	DeleteFunc         func(collection, id string) error
	DeleteAllFunc      func(collection string) (int64, error)

	inserts []insertCall
}

type insertCall struct {
	collection string
	doc        any
}

func (m *mockStore) GetOneByID(_ context.Context, collection, id string, dest any) error {
	if m.GetOneByIDFunc != nil {
		return m.GetOneByIDFunc(collection, id, dest)
	}
	return store.ErrNotFound
}

func (m *mockStore) GetOneByQuery(_ context.Context, collection string, query store.Query, dest any) error {
	if m.GetOneByQueryFunc != nil {
		return m.GetOneByQueryFunc(collection, query, dest)
	}
	return store.ErrNotFound
}

func (m *mockStore) GetManyByQuery(_ context.Context, collection string, queries []store.Query, dest any) error {
	if m.GetManyByQueryFunc != nil {
		return m.GetManyByQueryFunc(collection, queries, dest)
	}
	return nil
}

func (m *mockStore) Insert(_ context.Context, collection string, doc any) error {
	m.inserts = append(m.inserts, insertCall{collection: collection, doc: doc})
	if m.InsertFunc != nil {
		return m.InsertFunc(collection, doc)
	}
	return nil
}

func (m *mockStore) Patch(_ context.Context, collection, id string, doc any) error {
	if m.PatchFunc != nil {
		return m.PatchFunc(collection, id, doc)
	}
	return nil
}

func (m *mockStore) Delete(_ context.Context, collection, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(collection, id)
	}
	return nil
}

func (m *mockStore) DeleteAll(_ context.Context, collection string) (int64, error) {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(collection)
	}
	return 0, nil
}

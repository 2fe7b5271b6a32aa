package repository

import (
	"context"

	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/olprod/olprod-backend/mongo"
)

// In-memory stand-ins for the driver wrapper. Each fake records the filters
// and documents it receives so tests can assert on what would hit the store.

type fakeDatabase struct {
	collection *fakeCollection
}

func (d *fakeDatabase) Collection(string) mongo.Collection {
	return d.collection
}

type fakeCollection struct {
	insertedDocs []interface{}
	insertErr    error

	findFilter interface{}
	findOpts   []*options.FindOptions
	findCursor *fakeCursor
	findErr    error

	findOneFilter interface{}
	findOneResult *fakeSingleResult

	updateFilter interface{}
	updateDoc    interface{}
	updateResult *driver.UpdateResult
	updateErr    error
}

func (c *fakeCollection) FindOne(_ context.Context, filter interface{}) mongo.SingleResult {
	c.findOneFilter = filter
	return c.findOneResult
}

func (c *fakeCollection) InsertOne(_ context.Context, document interface{}) (interface{}, error) {
	if c.insertErr != nil {
		return nil, c.insertErr
	}
	c.insertedDocs = append(c.insertedDocs, document)
	return nil, nil
}

func (c *fakeCollection) Find(_ context.Context, filter interface{}, opts ...*options.FindOptions) (mongo.Cursor, error) {
	c.findFilter = filter
	c.findOpts = opts
	if c.findErr != nil {
		return nil, c.findErr
	}
	return c.findCursor, nil
}

func (c *fakeCollection) UpdateOne(_ context.Context, filter interface{}, update interface{}, _ ...*options.UpdateOptions) (*driver.UpdateResult, error) {
	c.updateFilter = filter
	c.updateDoc = update
	if c.updateErr != nil {
		return nil, c.updateErr
	}
	if c.updateResult == nil {
		return &driver.UpdateResult{}, nil
	}
	return c.updateResult, nil
}

func (c *fakeCollection) CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error) {
	return 0, nil
}

func (c *fakeCollection) Indexes() mongo.IndexView {
	return nil
}

type fakeSingleResult struct {
	decodeInto func(interface{}) error
}

func (r *fakeSingleResult) Decode(v interface{}) error {
	return r.decodeInto(v)
}

type fakeCursor struct {
	allInto func(interface{}) error
}

func (c *fakeCursor) Close(context.Context) error { return nil }
func (c *fakeCursor) Next(context.Context) bool   { return false }
func (c *fakeCursor) Decode(interface{}) error    { return nil }

func (c *fakeCursor) All(_ context.Context, result interface{}) error {
	return c.allInto(result)
}

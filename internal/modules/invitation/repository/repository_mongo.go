package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/golangid/wedding-invitation/candihelper"
	"github.com/golangid/wedding-invitation/candishared"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/domain"
	"github.com/golangid/wedding-invitation/logger"
	shareddomain "github.com/golangid/wedding-invitation/pkg/shared/domain"
	"github.com/golangid/wedding-invitation/tracer"
)

// document field paths
var (
	fieldRoot            = "wedding_invitation"
	fieldTemplate        = candishared.JoinFieldPath(fieldRoot, "template")
	fieldFonts           = candishared.JoinFieldPath(fieldRoot, "fonts")
	fieldContent         = candishared.JoinFieldPath(fieldRoot, "content")
	fieldBasicInfo       = candishared.JoinFieldPath(fieldContent, "basic_info")
	fieldCeremonyDetails = candishared.JoinFieldPath(fieldContent, "ceremony_details")
	fieldAdditionalInfo  = candishared.JoinFieldPath(fieldContent, "additional_info")
	fieldMetadata        = candishared.JoinFieldPath(fieldRoot, "metadata")
	fieldLastModified    = candishared.JoinFieldPath(fieldMetadata, "last_modified")
)

type invitationDocument struct {
	ID   primitive.ObjectID          `bson:"_id"`
	Data shareddomain.InvitationData `bson:"wedding_invitation"`
}

func (d invitationDocument) toInvitation() *shareddomain.Invitation {
	return &shareddomain.Invitation{ID: d.ID.Hex(), WeddingInvitationData: d.Data}
}

type invitationRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
	now             func() time.Time
}

// NewInvitationRepoMongo mongo repo constructor
func NewInvitationRepoMongo(readDB, writeDB *mongo.Database, collection string) InvitationRepository {
	return &invitationRepoMongo{
		readDB: readDB, writeDB: writeDB, collection: collection, now: time.Now,
	}
}

func (r *invitationRepoMongo) FetchAll(ctx context.Context) (data []shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationRepoMongo:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	cur, err := r.readDB.Collection(r.collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("fetch invitations: %w", err)
	}
	defer cur.Close(ctx)

	var docs []invitationDocument
	if err = cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode invitations: %w", err)
	}

	data = make([]shareddomain.Invitation, 0, len(docs))
	for _, doc := range docs {
		data = append(data, *doc.toInvitation())
	}
	return data, nil
}

func (r *invitationRepoMongo) Find(ctx context.Context, id string) (data *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationRepoMongo:Find")
	defer func() { trace.SetError(err); trace.Finish() }()

	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	trace.SetTag("id", id)

	var doc invitationDocument
	err = r.readDB.Collection(r.collection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		return nil, wrapMongoError("find invitation", err)
	}
	return doc.toInvitation(), nil
}

func (r *invitationRepoMongo) Save(ctx context.Context, data shareddomain.InvitationData) (res *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationRepoMongo:Save")
	defer func() { trace.SetError(err); trace.Finish() }()

	now := candihelper.FormatTimestamp(r.now())
	data.Metadata.CreatedDate, data.Metadata.LastModified = now, now
	doc := invitationDocument{ID: primitive.NewObjectID(), Data: data}

	if _, err = r.writeDB.Collection(r.collection).InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert invitation: %w", err)
	}
	trace.SetTag("id", doc.ID.Hex())
	return doc.toInvitation(), nil
}

func (r *invitationRepoMongo) Replace(ctx context.Context, id string, data shareddomain.InvitationData) (res *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationRepoMongo:Replace")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.findOneAndUpdate(ctx, id, replaceFields(data))
}

func (r *invitationRepoMongo) UpdateTemplate(ctx context.Context, id string, data shareddomain.Template) (res *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationRepoMongo:UpdateTemplate")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.findOneAndUpdate(ctx, id, sectionFields(fieldTemplate, data))
}

func (r *invitationRepoMongo) UpdateFonts(ctx context.Context, id string, data shareddomain.Fonts) (res *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationRepoMongo:UpdateFonts")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.findOneAndUpdate(ctx, id, sectionFields(fieldFonts, data))
}

func (r *invitationRepoMongo) UpdateContent(ctx context.Context, id string, data shareddomain.Content) (res *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationRepoMongo:UpdateContent")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.findOneAndUpdate(ctx, id, sectionFields(fieldContent, data))
}

func (r *invitationRepoMongo) UpdateBasicInfo(ctx context.Context, id string, data shareddomain.BasicInfo) (res *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationRepoMongo:UpdateBasicInfo")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.findOneAndUpdate(ctx, id, sectionFields(fieldBasicInfo, data))
}

func (r *invitationRepoMongo) UpdateCeremonyDetails(ctx context.Context, id string, data shareddomain.CeremonyDetails) (res *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationRepoMongo:UpdateCeremonyDetails")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.findOneAndUpdate(ctx, id, sectionFields(fieldCeremonyDetails, data))
}

func (r *invitationRepoMongo) UpdateAdditionalInfo(ctx context.Context, id string, data shareddomain.AdditionalInfo) (res *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationRepoMongo:UpdateAdditionalInfo")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.findOneAndUpdate(ctx, id, sectionFields(fieldAdditionalInfo, data))
}

func (r *invitationRepoMongo) Delete(ctx context.Context, id string) (deleted bool, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationRepoMongo:Delete")
	defer func() { trace.SetError(err); trace.Finish() }()

	objectID, err := parseObjectID(id)
	if err != nil {
		return false, nil
	}

	res, err := r.writeDB.Collection(r.collection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("delete invitation: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// findOneAndUpdate apply targeted field updates to one document, never upsert.
// last_modified only moves forward, stored timestamp layout sort lexicographically
func (r *invitationRepoMongo) findOneAndUpdate(ctx context.Context, id string, set bson.M) (*shareddomain.Invitation, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": set,
		"$max": bson.M{fieldLastModified: candihelper.FormatTimestamp(r.now())},
	}
	tracer.Log(ctx, "update", update)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(false)
	var doc invitationDocument
	err = r.writeDB.Collection(r.collection).FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&doc)
	if err != nil {
		return nil, wrapMongoError("update invitation", err)
	}
	return doc.toInvitation(), nil
}

// replaceFields full replacement except created_date, last_modified stamped by store
func replaceFields(data shareddomain.InvitationData) bson.M {
	set := candishared.FieldPathUpdate{Prefix: fieldRoot}.ToMap(data, candishared.DBUpdateSetIgnoredFields("Metadata"))
	metadata := candishared.FieldPathUpdate{Prefix: fieldMetadata}.ToMap(data.Metadata,
		candishared.DBUpdateSetIgnoredFields("CreatedDate", "LastModified"),
	)
	for k, v := range metadata {
		set[k] = v
	}
	return set
}

// sectionFields set only fields under section path
func sectionFields(path string, section interface{}) bson.M {
	return candishared.FieldPathUpdate{Prefix: path}.ToMap(section)
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.LogWf("invalid invitation id format: %s", id)
		return objectID, domain.ErrInvitationNotFound
	}
	return objectID, nil
}

func wrapMongoError(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrInvitationNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

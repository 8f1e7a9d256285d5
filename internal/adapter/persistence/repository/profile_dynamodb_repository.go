package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

const defaultProfilesTableName = "user_profiles"

type userProfileItem struct {
	Email                string `dynamodbav:"email_login"`
	UID                  string `dynamodbav:"firebase_uid,omitempty"`
	FullName             string `dynamodbav:"nombre_completo"`
	ClientRole           string `dynamodbav:"cliente_rol,omitempty"`
	RoleID               string `dynamodbav:"rol_id"`
	RoleName             string `dynamodbav:"nombre_rol"`
	SeesAllInstallations bool   `dynamodbav:"ver_todas_instalaciones"`
	Active               bool   `dynamodbav:"usuario_activo"`
	LastSession          string `dynamodbav:"ultima_sesion,omitempty"`
	SyncedAt             string `dynamodbav:"sincronizado_en"`
}

// UserProfileDynamoRepository writes denormalized account profiles into the
// document store the mobile client reads directly.
//
// Table requirements:
//   - PK: email_login (string)

type UserProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserProfileSink = (*UserProfileDynamoRepository)(nil)

func NewUserProfileDynamoRepository(ddb *dynamodb.Client) *UserProfileDynamoRepository {
	return &UserProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

// UpsertProfile overwrites the whole document; the warehouse is the source
// of truth and the sink is rebuilt field-by-field on every sync.
func (r *UserProfileDynamoRepository) UpsertProfile(ctx context.Context, p entities.UserProfile) error {
	it := userProfileItem{
		Email:                p.Email,
		UID:                  p.UID,
		FullName:             p.FullName,
		ClientRole:           p.ClientRole,
		RoleID:               p.RoleID,
		RoleName:             p.RoleName,
		SeesAllInstallations: p.SeesAllInstallations,
		Active:               p.Active,
		SyncedAt:             time.Now().UTC().Format(time.RFC3339Nano),
	}
	if p.LastSession != nil {
		it.LastSession = p.LastSession.UTC().Format(time.RFC3339Nano)
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"link-analytics-service/internal/clicks/core/domain"
	"link-analytics-service/internal/clicks/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidClick = errors.New("invalid click")
	ErrFutureTime   = errors.New("timestamp cannot be in the future")
)

type RecordClickUseCase struct {
	repo ports.ClickRepositoryPort
	geo  ports.GeoResolver
	salt string
	now  func() time.Time
}

func NewRecordClickUseCase(repo ports.ClickRepositoryPort, geo ports.GeoResolver, visitorSalt string) *RecordClickUseCase {
	return &RecordClickUseCase{
		repo: repo,
		geo:  geo,
		salt: visitorSalt,
		now:  time.Now,
	}
}

type RecordClickInput struct {
	URLID      string
	Timestamp  int64 // unix seconds, 0 means now
	IP         string
	VisitorKey string // overrides the IP-derived key when set
	UserAgent  string
	Referrer   string
	Geo        ports.GeoHints
}

func (uc *RecordClickUseCase) Execute(ctx context.Context, in RecordClickInput) (bool, error) {
	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	clickTime := uc.now().UTC()
	if in.Timestamp != 0 {
		clickTime = time.Unix(in.Timestamp, 0).UTC()
	}

	key := in.VisitorKey
	if key == "" {
		key = visitorKey(uc.salt, in.IP)
	}

	device, browser := classifyUserAgent(in.UserAgent)

	loc := uc.geo.Resolve(ctx, in.IP, in.Geo)

	c := &domain.Click{
		ID:             uuid.NewString(),
		URLID:          in.URLID,
		Timestamp:      clickTime,
		VisitorKey:     key,
		Country:        orUnknown(loc.Country),
		City:           orUnknown(loc.City),
		Device:         device,
		Browser:        browser,
		Referrer:       in.Referrer,
		ReferrerDomain: referrerDomain(in.Referrer),
		DedupeKey:      buildDedupeKey(in.URLID, key, clickTime),
	}

	created, err := uc.repo.InsertClick(ctx, c)
	if err != nil {
		return false, err
	}

	return created, nil
}

func buildDedupeKey(urlID, visitor string, t time.Time) string {
	// url_id + visitor_key + unix_timestamp
	return fmt.Sprintf("%s|%s|%d", urlID, visitor, t.Unix())
}

type BulkRecordClicksInput struct {
	Clicks []RecordClickInput
}

type BulkRecordClicksResult struct {
	Created    int
	Duplicates int
}

func (uc *RecordClickUseCase) BulkRecordClicks(ctx context.Context, in BulkRecordClicksInput) (BulkRecordClicksResult, error) {
	var res BulkRecordClicksResult

	for i, c := range in.Clicks {
		if err := uc.validateInput(c); err != nil {
			return res, fmt.Errorf("click %d: %w", i, err)
		}
	}

	for _, c := range in.Clicks {
		ok, err := uc.Execute(ctx, c)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *RecordClickUseCase) validateInput(in RecordClickInput) error {
	if in.URLID == "" {
		return ErrInvalidClick
	}
	if in.IP == "" && in.VisitorKey == "" {
		return ErrInvalidClick
	}

	if in.Timestamp > uc.now().Unix() {
		return ErrFutureTime
	}

	return nil
}

func orUnknown(v string) string {
	if v == "" {
		return domain.Unknown
	}
	return v
}

package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"aidchain/contract"
	"aidchain/internal/gateway/chain"
	"aidchain/internal/gateway/metrics"
)

// Overview is the dashboard aggregate assembled from per-object chain reads.
// Donation totals are carried both in base units and scaled for display.
type Overview struct {
	TotalRecipients       uint64  `json:"total_recipients"`
	VerifiedRecipients    uint64  `json:"verified_recipients"`
	PendingRecipients     uint64  `json:"pending_recipients"`
	TotalPackages         uint64  `json:"total_packages"`
	DeliveredPackages     uint64  `json:"delivered_packages"`
	TotalDonations        int64   `json:"total_donations"`
	TotalDonationsDisplay float64 `json:"total_donations_display"`
	TotalVerifiers        uint64  `json:"total_verifiers"`
	FailedReads           int     `json:"failed_reads"`
}

const amountScale = 1_000_000_000

// Service serves read-model queries on top of a chain reader.
type Service struct {
	reader      chain.Reader
	logger      *slog.Logger
	metrics     *metrics.Metrics
	concurrency int
}

func New(reader chain.Reader, logger *slog.Logger, m *metrics.Metrics, concurrency int) *Service {
	return &Service{
		reader:      reader,
		logger:      logger,
		metrics:     m,
		concurrency: concurrency,
	}
}

// Overview fans out over the registry index and folds every readable record.
// Objects that fail to fetch or decode are skipped and counted, never fatal.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	start := time.Now()
	defer s.metrics.ObserveStats(start)

	rawIndex, err := s.reader.Call(ctx, "registry_index", "")
	if err != nil {
		return Overview{}, fmt.Errorf("fetch registry index: %w", err)
	}
	var index contract.RegistryIndexView
	if err := json.Unmarshal([]byte(rawIndex), &index); err != nil {
		return Overview{}, fmt.Errorf("decode registry index: %w", err)
	}

	overview := Overview{TotalVerifiers: index.TotalVerifiers}

	profiles, failedProfiles := chain.GetMany(ctx, s.reader, "recipient_get", index.RecipientIDs, s.concurrency)
	overview.FailedReads += failedProfiles
	for id, raw := range profiles {
		var profile contract.RecipientProfileView
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			s.logger.Warn("undecodable recipient record", "id", id, "error", err)
			overview.FailedReads++
			continue
		}
		overview.TotalRecipients++
		if profile.IsVerified {
			overview.VerifiedRecipients++
		} else {
			overview.PendingRecipients++
		}
	}

	packages, failedPackages := chain.GetMany(ctx, s.reader, "package_get", index.PackageIDs, s.concurrency)
	overview.FailedReads += failedPackages
	for id, raw := range packages {
		var pkg contract.AidPackageView
		if err := json.Unmarshal([]byte(raw), &pkg); err != nil {
			s.logger.Warn("undecodable package record", "id", id, "error", err)
			overview.FailedReads++
			continue
		}
		overview.TotalPackages++
		if contract.PackageStatus(pkg.Status) == contract.StatusDelivered {
			overview.DeliveredPackages++
		}
		overview.TotalDonations += pkg.DonationAmount
	}

	if overview.FailedReads > 0 {
		s.metrics.FailedReads.WithLabelValues("overview").Add(float64(overview.FailedReads))
	}
	overview.TotalDonationsDisplay = float64(overview.TotalDonations) / amountScale
	return overview, nil
}

// Packages returns every readable package ordered by id.
func (s *Service) Packages(ctx context.Context) ([]contract.AidPackageView, error) {
	raw, err := s.reader.Call(ctx, "packages_list", "")
	if err != nil {
		return nil, fmt.Errorf("fetch packages: %w", err)
	}
	var list contract.PackageListView
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode packages: %w", err)
	}
	sort.Slice(list.Packages, func(i, j int) bool { return list.Packages[i].ID < list.Packages[j].ID })
	return list.Packages, nil
}

// Recipients returns every readable recipient profile ordered by id.
func (s *Service) Recipients(ctx context.Context) ([]contract.RecipientProfileView, error) {
	raw, err := s.reader.Call(ctx, "recipients_list", "")
	if err != nil {
		return nil, fmt.Errorf("fetch recipients: %w", err)
	}
	var list contract.RecipientListView
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode recipients: %w", err)
	}
	sort.Slice(list.Recipients, func(i, j int) bool { return list.Recipients[i].ID < list.Recipients[j].ID })
	return list.Recipients, nil
}

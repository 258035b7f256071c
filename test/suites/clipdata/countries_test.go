package test_test

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	"github.com/loopcontext/clipdata"
	"github.com/loopcontext/clipdata/test"
	mock_clipdata "github.com/loopcontext/clipdata/test/mock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const manifestPath = "/ext/" + clipdata.DefaultManifestFile

var _ = Describe("Country pipeline", func() {
	var (
		ctrl     *gomock.Controller
		fetcher  *mock_clipdata.MockFetcher
		fsys     *test.MemFS
		logs     *observer.ObservedLogs
		pipeline *clipdata.CountryPipeline
		obs      *mock_clipdata.MockObserver
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		fetcher = mock_clipdata.NewMockFetcher(ctrl)
		obs = mock_clipdata.NewMockObserver(ctrl)
		fsys = test.NewMemFS()
		core, observed := observer.New(zap.InfoLevel)
		logs = observed
		pipeline = clipdata.NewCountryPipeline(clipdata.CountryPipelineOptions{
			Config:   clipdata.Config{Countries: clipdata.CountryConfig{ExtensionRoot: "/ext"}},
			Fetcher:  fetcher,
			FS:       fsys,
			Logger:   zap.New(core),
			Observer: obs,
		})
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	expectFlags := func() {
		fetcher.EXPECT().Fetch(gomock.Any(), clipdata.DefaultAPIURL).Return([]byte(test.Upstream), nil)
		fetcher.EXPECT().Fetch(gomock.Any(), "https://flags.test/de.svg").Return([]byte("<svg>de</svg>"), nil)
		fetcher.EXPECT().Fetch(gomock.Any(), "https://flags.test/us.svg").Return([]byte("<svg>us</svg>"), nil)
		obs.EXPECT().OnRecordDropped("AQ", "no dial code")
		obs.EXPECT().OnAssetMaterialized("DE", "de.svg")
		obs.EXPECT().OnAssetMaterialized("US", "us.svg")
	}

	It("should write sorted records and flag files", func() {
		fsys.Put(manifestPath, test.Manifest)
		expectFlags()

		report, err := pipeline.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Records).To(Equal(3))
		Expect(report.Dropped).To(Equal(1))
		Expect(report.Prefix).To(Equal("/org/example/clip"))
		Expect(report.Materialized).To(Equal([]string{"de.svg", "us.svg"}))
		Expect(report.Stats.DroppedRecords).To(HaveKeyWithValue("AQ", 1))

		content, ok := fsys.Get("/ext/assets/data/json/countries.json")
		Expect(ok).To(BeTrue())
		Expect(content).To(MatchJSON(`[
			{"name": "France", "code": "FR", "dial_code": "+33", "emoji": "🇫🇷", "flag_path": ""},
			{"name": "Germany", "code": "DE", "dial_code": "+49", "emoji": "🇩🇪",
			 "flag_path": "resource:///org/example/clip/assets/data/svg/de.svg"},
			{"name": "United States", "code": "US", "dial_code": "+1", "emoji": "🇺🇸",
			 "flag_path": "resource:///org/example/clip/assets/data/svg/us.svg"}
		]`))

		flag, ok := fsys.Get("/ext/assets/data/svg/de.svg")
		Expect(ok).To(BeTrue())
		Expect(flag).To(Equal("<svg>de</svg>"))
	})

	It("should rewrite the manifest from the flag directory", func() {
		fsys.Put(manifestPath, test.Manifest)
		expectFlags()

		report, err := pipeline.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(report.ManifestSynced).To(BeTrue())

		manifest, _ := fsys.Get(manifestPath)
		Expect(manifest).To(Equal(`<?xml version="1.0" encoding="UTF-8"?>
<gresources>
  <gresource prefix="/org/example/clip">
    <file>assets/icons/logo.png</file>
    <file preprocess="xml-stripblanks">ui/window.ui</file>
      <file>assets/data/svg/de.svg</file>
      <file>assets/data/svg/us.svg</file>
  </gresource>
</gresources>
`))
	})

	It("should keep going without a manifest", func() {
		expectFlags()

		report, err := pipeline.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Prefix).To(Equal(clipdata.DefaultResourcePrefix))
		Expect(report.ManifestSynced).To(BeFalse())
		Expect(clipdata.IsKind(report.ManifestErr, clipdata.KindMissingResource)).To(BeTrue())
		Expect(logs.FilterMessage("manifest not found, using default prefix").Len()).To(Equal(1))

		_, ok := fsys.Get("/ext/assets/data/json/countries.json")
		Expect(ok).To(BeTrue())
		_, ok = fsys.Get(manifestPath)
		Expect(ok).To(BeFalse())
	})

	It("should write nothing when the API is unreachable", func() {
		fsys.Put(manifestPath, test.Manifest)
		fetcher.EXPECT().Fetch(gomock.Any(), clipdata.DefaultAPIURL).Return(nil, errors.New("connection refused"))

		_, err := pipeline.Run(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(clipdata.IsKind(err, clipdata.KindTransport)).To(BeTrue())
		Expect(fsys.Files("/ext/assets")).To(BeEmpty())

		manifest, _ := fsys.Get(manifestPath)
		Expect(manifest).To(Equal(test.Manifest))
	})

	It("should keep existing output when the API returns no countries", func() {
		fsys.Put(manifestPath, test.Manifest)
		fsys.Put("/ext/assets/data/json/countries.json", `[{"name": "X"}]`)
		fetcher.EXPECT().Fetch(gomock.Any(), clipdata.DefaultAPIURL).Return([]byte(`[]`), nil)

		_, err := pipeline.Run(context.Background())
		Expect(clipdata.IsKind(err, clipdata.KindTransport)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("no country data"))

		content, _ := fsys.Get("/ext/assets/data/json/countries.json")
		Expect(content).To(Equal(`[{"name": "X"}]`))
		manifest, _ := fsys.Get(manifestPath)
		Expect(manifest).To(Equal(test.Manifest))
	})

	It("should keep a record whose flag download failed", func() {
		fsys.Put(manifestPath, test.Manifest)
		fetcher.EXPECT().Fetch(gomock.Any(), clipdata.DefaultAPIURL).Return([]byte(test.Upstream), nil)
		fetcher.EXPECT().Fetch(gomock.Any(), "https://flags.test/de.svg").Return(nil, errors.New("timeout"))
		fetcher.EXPECT().Fetch(gomock.Any(), "https://flags.test/us.svg").Return([]byte("<svg/>"), nil)
		obs.EXPECT().OnRecordDropped("AQ", "no dial code")
		obs.EXPECT().OnAssetFailed("DE", gomock.Any())
		obs.EXPECT().OnAssetMaterialized("US", "us.svg")

		report, err := pipeline.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Records).To(Equal(3))
		Expect(report.Stats.AssetFailures).To(HaveKeyWithValue("DE", 1))
		Expect(logs.FilterMessage("failed to download flag").Len()).To(Equal(1))

		manifest, _ := fsys.Get(manifestPath)
		Expect(manifest).NotTo(ContainSubstring("de.svg"))
		Expect(manifest).To(ContainSubstring("<file>assets/data/svg/us.svg</file>"))
	})
})

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/ethereum/go-ethereum/ethclient"
	zksync "github.com/test091/zksync-era"
	"github.com/test091/zksync-era/batchsync"
	zkcommon "github.com/test091/zksync-era/common"
	"github.com/test091/zksync-era/config"
	"github.com/test091/zksync-era/fee"
	"github.com/test091/zksync-era/gasprice"
	"github.com/test091/zksync-era/log"
	"github.com/test091/zksync-era/logindex"
	"github.com/test091/zksync-era/logproof"
	"github.com/test091/zksync-era/rpc"
	"github.com/test091/zksync-era/simulator"
	"github.com/urfave/cli/v2"
)

const internalHost = "127.0.0.1"

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		zksync.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	ctx, cancel := context.WithCancel(cliCtx.Context)
	defer cancel()

	components := cliCtx.StringSlice(config.FlagComponents)
	oracle := runGasPriceOracle(ctx, components, c.GasPrice)

	var closers []func() error
	var index *logindex.LogIndexSQLStorage
	if isNeeded([]string{zkcommon.RPC, zkcommon.BATCH_SYNC}, components) {
		index = newLogIndex(c.LogIndex)
		closers = append(closers, index.Close)
	}
	for _, component := range components {
		switch component {
		case zkcommon.RPC:
			rpcCfg := c.RPC
			if c.ZKS.InternalPort != 0 {
				rpcCfg.Host = internalHost
				rpcCfg.Port = c.ZKS.InternalPort
				proxy := startAliasProxy(c.RPC, rpcCfg)
				closers = append(closers, proxy.Close)
			}
			server := createRPC(ctx, *c, rpcCfg, index, oracle)
			closers = append(closers, server.Stop)
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal(err)
				}
			}()
		case zkcommon.BATCH_SYNC:
			go runBatchSync(ctx, c.BatchSync, index)
		case zkcommon.GAS_PRICE:
			// started by runGasPriceOracle
		default:
			return fmt.Errorf("unknown component %s", component)
		}
	}

	waitSignal([]context.CancelFunc{cancel}, closers)

	return nil
}

// runGasPriceOracle samples L1 when the gasprice component is enabled and
// falls back to the static prices of the config otherwise
func runGasPriceOracle(ctx context.Context, components []string, cfg gasprice.Config) gasprice.Oracle {
	if !isNeeded([]string{zkcommon.GAS_PRICE}, components) {
		log.Infof("%s component not enabled, using static L1 gas price %d", zkcommon.GAS_PRICE, cfg.StaticBasePrice)
		return gasprice.NewStatic(cfg.StaticBasePrice, cfg.StaticPriorityPrice)
	}
	log.Debugf("dialing L1 client at: %s", cfg.URLRPCL1)
	l1Client, err := ethclient.DialContext(ctx, cfg.URLRPCL1)
	if err != nil {
		log.Fatalf("failed to create client for L1 using URL: %s. Err:%v", cfg.URLRPCL1, err)
	}
	adjuster, err := gasprice.NewL1Adjuster(log.WithFields("module", zkcommon.GAS_PRICE), cfg, l1Client)
	if err != nil {
		log.Fatal(err)
	}
	go adjuster.Start(ctx)

	return adjuster
}

func newLogIndex(cfg logindex.Config) *logindex.LogIndexSQLStorage {
	index, err := logindex.NewLogIndexSQLStorage(log.WithFields("module", zkcommon.LOG_INDEX), cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	return index
}

func runBatchSync(ctx context.Context, cfg batchsync.Config, index *logindex.LogIndexSQLStorage) {
	source, err := batchsync.NewRPCSource(ctx, cfg.URL)
	if err != nil {
		log.Fatalf("failed to create batch source using URL: %s. Err:%v", cfg.URL, err)
	}
	syncer, err := batchsync.New(log.WithFields("module", zkcommon.BATCH_SYNC), cfg, source, index)
	if err != nil {
		log.Fatal(err)
	}
	syncer.Start(ctx)
}

// startAliasProxy serves public with the method aliases of the zks namespace, forwarding to internal
func startAliasProxy(public, internal jRPC.Config) *http.Server {
	handler, err := rpc.NewAliasProxy(fmt.Sprintf("http://%s:%d", internal.Host, internal.Port))
	if err != nil {
		log.Fatal(err)
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", public.Host, public.Port),
		Handler:           handler,
		ReadHeaderTimeout: public.ReadTimeout.Duration,
		ReadTimeout:       public.ReadTimeout.Duration,
		WriteTimeout:      public.WriteTimeout.Duration,
	}
	go func() {
		log.Infof("alias proxy listening on %s, forwarding to %s:%d", srv.Addr, internal.Host, internal.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()
	return srv
}

func createRPC(
	ctx context.Context,
	c config.Config,
	rpcCfg jRPC.Config,
	index *logindex.LogIndexSQLStorage,
	oracle gasprice.Oracle,
) *jRPC.Server {
	prover, err := logproof.New(log.WithFields("module", zkcommon.LOG_PROOF), c.LogProof, index)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := simulator.NewRPCSimulator(ctx, log.WithFields("module", zkcommon.SIMULATOR), c.Simulator)
	if err != nil {
		log.Fatalf("failed to create simulator using URL: %s. Err:%v", c.Simulator.URL, err)
	}
	estimator, err := fee.New(log.WithFields("module", zkcommon.FEE_ESTIMATOR), c.Fee, sim, oracle)
	if err != nil {
		log.Fatal(err)
	}

	logger := log.WithFields("module", zkcommon.RPC)
	services := []jRPC.Service{
		{
			Name: rpc.ZKS,
			Service: rpc.NewZKSEndpoints(
				logger,
				c.ZKS.ReadTimeout.Duration,
				c.ZKS.EstimateTimeout.Duration,
				c.Common,
				prover,
				estimator,
				index,
				oracle,
			),
		},
	}

	return jRPC.NewServer(rpcCfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

func logVersion() {
	log.Infow("Starting application", zksync.GetVersion().LogFields()...)
}

func waitSignal(cancelFuncs []context.CancelFunc, closers []func() error) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	<-signals
	log.Info("terminating application gracefully...")
	for _, cancel := range cancelFuncs {
		cancel()
	}
	// servers are registered after the storage they read from
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			log.Warnf("error closing resource: %v", err)
		}
	}
	os.Exit(0)
}

func isNeeded(casesWhereNeeded, actualCases []string) bool {
	for _, actualCase := range actualCases {
		for _, caseWhereNeeded := range casesWhereNeeded {
			if actualCase == caseWhereNeeded {
				return true
			}
		}
	}

	return false
}

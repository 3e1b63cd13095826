package adapter

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/MKhiriev/go-data-market/internal/config"
	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/models"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// defaultChainTimeout bounds every outbound contract call when no timeout is
// configured.
const defaultChainTimeout = 30 * time.Second

// marketplaceABI describes the read-only surface of the deployed marketplace
// contract consumed by this backend.
const marketplaceABI = `[
  {"name":"ownerOf","type":"function","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
  {"name":"hasAccess","type":"function","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"},{"name":"user","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
  {"name":"getDatasetsByOwner","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256[]"}]},
  {"name":"getMyPurchasedDatasets","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256[]"}]},
  {"name":"getDatasetById","type":"function","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"tuple","components":[{"name":"id","type":"uint256"},{"name":"name","type":"string"},{"name":"description","type":"string"},{"name":"price","type":"uint256"},{"name":"owner","type":"address"},{"name":"forSale","type":"bool"}]}]},
  {"name":"getAllDatasets","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple[]","components":[{"name":"id","type":"uint256"},{"name":"name","type":"string"},{"name":"description","type":"string"},{"name":"price","type":"uint256"},{"name":"owner","type":"address"},{"name":"forSale","type":"bool"}]}]}
]`

// ContractCaller is the narrow slice of the Ethereum client used by the
// chain reader: execute one read-only call against the latest block.
// *ethclient.Client satisfies it; tests substitute a double.
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// chainDatasetRecord mirrors the contract's Dataset tuple for ABI decoding.
type chainDatasetRecord struct {
	Id          *big.Int
	Name        string
	Description string
	Price       *big.Int
	Owner       common.Address
	ForSale     bool
}

// chainReader is the eth_call-backed implementation of [ChainReader].
type chainReader struct {
	caller   ContractCaller
	contract common.Address
	abi      abi.ABI
	timeout  time.Duration
	logger   *logger.Logger
}

// NewChainReader dials the configured RPC endpoint and constructs a
// [ChainReader] bound to the configured contract address.
//
// Returns an error if the contract address is malformed, the ABI fails to
// parse, or the endpoint URL is invalid. Note that dialing an HTTP endpoint
// does not establish a connection; transport failures surface per call as
// [ErrChainTransport].
func NewChainReader(cfg config.Chain, log *logger.Logger) (ChainReader, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("malformed contract address %q", cfg.ContractAddress)
	}

	parsedABI, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		return nil, fmt.Errorf("parse marketplace abi: %w", err)
	}

	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc endpoint: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultChainTimeout
	}

	return &chainReader{
		caller:   client,
		contract: common.HexToAddress(cfg.ContractAddress),
		abi:      parsedABI,
		timeout:  timeout,
		logger:   log,
	}, nil
}

// OwnerOf implements [ChainReader].
func (c *chainReader) OwnerOf(ctx context.Context, tokenID int64) (common.Address, error) {
	res, err := c.call(ctx, nil, "ownerOf", new(big.Int).SetInt64(tokenID))
	if err != nil {
		return common.Address{}, err
	}

	owner := *abi.ConvertType(res[0], new(common.Address)).(*common.Address)
	return owner, nil
}

// HasAccess implements [ChainReader].
func (c *chainReader) HasAccess(ctx context.Context, tokenID int64, wallet common.Address) (bool, error) {
	res, err := c.call(ctx, nil, "hasAccess", new(big.Int).SetInt64(tokenID), wallet)
	if err != nil {
		return false, err
	}

	granted := *abi.ConvertType(res[0], new(bool)).(*bool)
	return granted, nil
}

// DatasetsByOwner implements [ChainReader].
func (c *chainReader) DatasetsByOwner(ctx context.Context, wallet common.Address) ([]int64, error) {
	res, err := c.call(ctx, nil, "getDatasetsByOwner", wallet)
	if err != nil {
		return nil, err
	}

	return tokenIDs(res[0]), nil
}

// PurchasedDatasets implements [ChainReader]. The wallet is set as the call
// sender because the contract getter enumerates msg.sender's purchases.
func (c *chainReader) PurchasedDatasets(ctx context.Context, wallet common.Address) ([]int64, error) {
	res, err := c.call(ctx, &wallet, "getMyPurchasedDatasets")
	if err != nil {
		return nil, err
	}

	return tokenIDs(res[0]), nil
}

// DatasetByID implements [ChainReader].
func (c *chainReader) DatasetByID(ctx context.Context, tokenID int64) (models.ChainDataset, error) {
	res, err := c.call(ctx, nil, "getDatasetById", new(big.Int).SetInt64(tokenID))
	if err != nil {
		return models.ChainDataset{}, err
	}

	record := *abi.ConvertType(res[0], new(chainDatasetRecord)).(*chainDatasetRecord)
	return toChainDataset(record), nil
}

// AllDatasets implements [ChainReader].
func (c *chainReader) AllDatasets(ctx context.Context) ([]models.ChainDataset, error) {
	res, err := c.call(ctx, nil, "getAllDatasets")
	if err != nil {
		return nil, err
	}

	records := *abi.ConvertType(res[0], new([]chainDatasetRecord)).(*[]chainDatasetRecord)

	datasets := make([]models.ChainDataset, 0, len(records))
	for _, record := range records {
		datasets = append(datasets, toChainDataset(record))
	}

	return datasets, nil
}

// call packs one read-only contract invocation, executes it against the
// latest block under the configured timeout, and unpacks the result.
func (c *chainReader) call(ctx context.Context, from *common.Address, method string, args ...any) ([]any, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	msg := ethereum.CallMsg{To: &c.contract, Data: input}
	if from != nil {
		msg.From = *from
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	output, err := c.caller.CallContract(callCtx, msg, nil)
	if err != nil {
		return nil, classifyCallError(method, err)
	}

	res, err := c.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}

	return res, nil
}

// classifyCallError splits contract-call failures into the two sentinel
// families: node-level JSON-RPC errors (reverts, unknown token) fold into
// [ErrCallReverted], everything else — HTTP errors from the endpoint,
// timeouts, connection failures — into [ErrChainTransport].
func classifyCallError(method string, err error) error {
	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Errorf("%w: %s: http %d", ErrChainTransport, method, httpErr.StatusCode)
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("%w: %s: %w", ErrCallReverted, method, err)
	}

	if errors.Is(err, ethereum.NotFound) {
		return fmt.Errorf("%w: %s: %w", ErrCallReverted, method, err)
	}

	return fmt.Errorf("%w: %s: %w", ErrChainTransport, method, err)
}

// tokenIDs converts an unpacked uint256[] into int64 token identifiers.
func tokenIDs(raw any) []int64 {
	values := *abi.ConvertType(raw, new([]*big.Int)).(*[]*big.Int)

	ids := make([]int64, 0, len(values))
	for _, v := range values {
		ids = append(ids, v.Int64())
	}

	return ids
}

// toChainDataset maps a decoded contract tuple onto the API model.
func toChainDataset(record chainDatasetRecord) models.ChainDataset {
	return models.ChainDataset{
		TokenID:     record.Id.Int64(),
		Name:        record.Name,
		Description: record.Description,
		Price:       record.Price.String(),
		Owner:       record.Owner.Hex(),
		ForSale:     record.ForSale,
	}
}

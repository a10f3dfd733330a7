package tracker

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/domain/mocks"
)

type fakeDiscord struct {
	channel string
	sent    []*discordgo.MessageEmbed
}

func (d *fakeDiscord) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	d.channel = channelID
	d.sent = append(d.sent, embed)
	return &discordgo.Message{}, nil
}

var testContract = &domain.ContractInfo{
	ChainId:        11155111,
	Address:        "0x5fbdb2315678afecb367f032d93f642f64180aa3",
	ExplorerUrl:    "https://sepolia.etherscan.io",
	MarketplaceUrl: "https://testnets.opensea.io/assets/sepolia",
}

func TestMintAnnouncer(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	metadata := mocks.NewMetadataUseCase(t)
	discord := &fakeDiscord{}
	a := newMintAnnouncer(&MintAnnouncerCfg{ChannelId: "chan-1", Contract: testContract, Metadata: metadata}, discord)

	token := &domain.IndexedToken{TokenId: "4", Owner: "0xabc", TokenURI: "ipfs://meta/4", MintTxHash: "0xfeed"}
	metadata.On("GetFromUrl", mock.Anything, "ipfs://meta/4").Return(&domain.NftMetadata{Name: "Cat", Image: "ipfs://img/4"}, nil).Once()
	req.NoError(a.OnMint(ctx, token))

	req.Equal("chan-1", discord.channel)
	req.Len(discord.sent, 1)
	msg := discord.sent[0]
	req.Equal("Cat minted!", msg.Title)
	req.Equal("ipfs://img/4", msg.Image.URL)
	req.Equal("https://testnets.opensea.io/assets/sepolia/0x5fbdb2315678afecb367f032d93f642f64180aa3/4", msg.Description)
	req.Equal("https://sepolia.etherscan.io/token/0x5fbdb2315678afecb367f032d93f642f64180aa3?a=4", msg.URL)

	// missing metadata still announces
	metadata.On("GetFromUrl", mock.Anything, "ipfs://broken").Return(nil, domain.ErrInvalidJsonFormat).Once()
	req.NoError(a.OnMint(ctx, &domain.IndexedToken{TokenId: "5", TokenURI: "ipfs://broken"}))
	req.Len(discord.sent, 2)
	req.Equal("Token #5 minted!", discord.sent[1].Title)
	req.Nil(discord.sent[1].Image)
}

func TestImageMirror(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	metadata := mocks.NewMetadataUseCase(t)
	webResource := mocks.NewWebResourceUseCase(t)
	tokenIndex := mocks.NewTokenIndexUseCase(t)
	m := NewImageMirror(&ImageMirrorCfg{Metadata: metadata, WebResource: webResource, TokenIndex: tokenIndex})

	token := &domain.IndexedToken{ChainId: 11155111, ContractAddress: testContract.Address, TokenId: "4", TokenURI: "ipfs://meta/4"}
	metadata.On("GetFromUrl", mock.Anything, "ipfs://meta/4").Return(&domain.NftMetadata{Name: "Cat", Image: "ipfs://img/4"}, nil)
	webResource.On("Mirror", mock.Anything, domain.ChainId(11155111), testContract.Address, domain.TokenId("4"), "ipfs://img/4").
		Return("https://storage.googleapis.com/bucket/4.png", nil).Once()
	tokenIndex.On("SetImageMirror", mock.Anything, token.ToId(), "https://storage.googleapis.com/bucket/4.png").Return(nil).Once()
	req.NoError(m.OnMint(ctx, token))

	webResource.On("Mirror", mock.Anything, mock.Anything, mock.Anything, domain.TokenId("5"), mock.Anything).Return("", errors.New("gateway timeout")).Once()
	err := m.OnMint(ctx, &domain.IndexedToken{TokenId: "5", TokenURI: "ipfs://meta/4"})
	req.Error(err)
}
